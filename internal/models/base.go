package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func ensureID(id *uuid.UUID) {
	if *id == uuid.Nil {
		*id = uuid.New()
	}
}

func (u *User) BeforeCreate(*gorm.DB) error         { ensureID(&u.ID); return nil }
func (c *Chat) BeforeCreate(*gorm.DB) error         { ensureID(&c.ID); return nil }
func (m *ChatMessage) BeforeCreate(*gorm.DB) error  { ensureID(&m.ID); return nil }
func (r *HealthReport) BeforeCreate(*gorm.DB) error { ensureID(&r.ID); return nil }
func (v *Vitals) BeforeCreate(*gorm.DB) error       { ensureID(&v.ID); return nil }

// All lists every entity owned by the schema, in migration order.
func All() []interface{} {
	return []interface{}{
		&User{},
		&Chat{},
		&ChatMessage{},
		&HealthReport{},
		&Vitals{},
	}
}
