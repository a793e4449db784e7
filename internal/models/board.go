package models

import (
	"time"

	"github.com/thenoetrevino/boardview/internal/types"
)

// Board groups columns and items
type Board struct {
	ID        types.BoardID `json:"id"`
	Name      string        `json:"name"`
	CreatedAt time.Time     `json:"createdAt"`
}
