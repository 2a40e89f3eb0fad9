package models

import (
	"time"
)

type Comment struct {
	ID        int64     `json:"id" yaml:"id"`
	Author    string    `json:"author" yaml:"author"`
	Message   string    `json:"message" yaml:"message"`
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
}
