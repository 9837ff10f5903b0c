package utils

import (
	"context"
	"errors"
	"fmt"
	"math"
	mathrand "math/rand"
	"time"

	"healthmate/internal/auth"
	"healthmate/internal/models"

	"gorm.io/gorm"
)

const (
	DefaultDemoEmail    = "demo@healthmate.dev"
	DefaultDemoPassword = "demo1234"
	DefaultDemoDays     = 30
)

type SeedOptions struct {
	Email    string
	Password string
	FullName string
	Days     int
	// Seed fixes the generated series; zero picks one from the clock.
	Seed int64
	Now  time.Time
}

type SeedResult struct {
	User     *models.User
	Created  bool
	Vitals   int
	Messages int
}

func (o *SeedOptions) defaults() {
	if o.Email == "" {
		o.Email = DefaultDemoEmail
	}
	if o.Password == "" {
		o.Password = DefaultDemoPassword
	}
	if o.FullName == "" {
		o.FullName = "Demo User"
	}
	if o.Days <= 0 {
		o.Days = DefaultDemoDays
	}
	if o.Now.IsZero() {
		o.Now = time.Now().UTC()
	}
	if o.Seed == 0 {
		o.Seed = o.Now.UnixNano()
	}
}

// SeedDemo creates (or reuses) a demo account and gives it one vitals record
// per day for opts.Days days plus a short welcome chat.
func SeedDemo(ctx context.Context, db *gorm.DB, opts SeedOptions) (*SeedResult, error) {
	opts.defaults()
	r := mathrand.New(mathrand.NewSource(opts.Seed))
	res := &SeedResult{}

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		user, created, err := findOrCreateDemoUser(tx, opts)
		if err != nil {
			return err
		}
		res.User, res.Created = user, created

		series := demoVitals(user, opts, r)
		if err := tx.CreateInBatches(series, 100).Error; err != nil {
			return fmt.Errorf("insert vitals: %w", err)
		}
		res.Vitals = len(series)

		chat := demoChat(user, opts.Now)
		if err := tx.Create(chat).Error; err != nil {
			return fmt.Errorf("insert chat: %w", err)
		}
		res.Messages = len(chat.Messages)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func findOrCreateDemoUser(tx *gorm.DB, opts SeedOptions) (*models.User, bool, error) {
	var user models.User
	err := tx.Where("email = ?", opts.Email).First(&user).Error
	if err == nil {
		return &user, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, fmt.Errorf("look up demo user: %w", err)
	}

	hash, err := auth.HashPassword(opts.Password)
	if err != nil {
		return nil, false, fmt.Errorf("hash password: %w", err)
	}
	blood := "O+"
	user = models.User{
		Email:             opts.Email,
		Password:          hash,
		FullName:          opts.FullName,
		BloodGroup:        &blood,
		Allergies:         models.StringList{"penicillin"},
		ChronicConditions: models.StringList{},
	}
	if err := tx.Create(&user).Error; err != nil {
		return nil, false, fmt.Errorf("create demo user: %w", err)
	}
	return &user, true, nil
}

// demoVitals walks each metric around a baseline so the stats trend lines
// look plausible. Weight and temperature are skipped on some days to exercise
// sparse records.
func demoVitals(user *models.User, opts SeedOptions, r *mathrand.Rand) []models.Vitals {
	start := time.Date(opts.Now.Year(), opts.Now.Month(), opts.Now.Day(), 8, 0, 0, 0, time.UTC).
		AddDate(0, 0, -(opts.Days - 1))

	out := make([]models.Vitals, 0, opts.Days)
	for i := 0; i < opts.Days; i++ {
		v := models.Vitals{
			UserID:                 user.ID,
			VitalDate:              start.AddDate(0, 0, i).Add(time.Duration(r.Intn(120)) * time.Minute),
			BloodPressureSystolic:  jitter(r, 120, 8),
			BloodPressureDiastolic: jitter(r, 80, 5),
			BloodSugar:             jitter(r, 100, 15),
			HeartRate:              jitter(r, 72, 6),
		}
		if i%2 == 0 {
			v.Weight = jitter(r, 70, 0.6)
		}
		if i%3 == 0 {
			v.Temperature = jitter(r, 36.8, 0.3)
		}
		out = append(out, v)
	}
	return out
}

func jitter(r *mathrand.Rand, base, spread float64) *float64 {
	v := base + (r.Float64()*2-1)*spread
	v = math.Round(v*10) / 10
	return &v
}

func demoChat(user *models.User, now time.Time) *models.Chat {
	return &models.Chat{
		UserID:   user.ID,
		Title:    "Getting started",
		IsActive: true,
		Messages: []models.ChatMessage{
			{
				Position:  0,
				Role:      models.RoleUser,
				Content:   "What is a healthy fasting blood sugar range?",
				Timestamp: now.Add(-time.Minute),
			},
			{
				Position:  1,
				Role:      models.RoleAssistant,
				Content:   "For most adults a fasting blood sugar between 70 and 99 mg/dL is considered normal. Please discuss your own targets with your doctor.",
				Timestamp: now,
			},
		},
	}
}

type ClearResult struct {
	Vitals   int64
	Reports  int64
	Chats    int64
	Messages int64
}

// ClearDemo removes the account registered under email together with all of
// its records. Stored report files are left in place.
func ClearDemo(ctx context.Context, db *gorm.DB, email string) (*ClearResult, error) {
	res := &ClearResult{}
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.Where("email = ?", email).First(&user).Error; err != nil {
			return fmt.Errorf("look up %s: %w", email, err)
		}

		chatIDs := tx.Model(&models.Chat{}).Select("id").Where("user_id = ?", user.ID)
		msgs := tx.Where("chat_id IN (?)", chatIDs).Delete(&models.ChatMessage{})
		if msgs.Error != nil {
			return fmt.Errorf("delete messages: %w", msgs.Error)
		}
		res.Messages = msgs.RowsAffected

		for _, step := range []struct {
			model interface{}
			count *int64
		}{
			{&models.Chat{}, &res.Chats},
			{&models.HealthReport{}, &res.Reports},
			{&models.Vitals{}, &res.Vitals},
		} {
			del := tx.Where("user_id = ?", user.ID).Delete(step.model)
			if del.Error != nil {
				return fmt.Errorf("delete %T: %w", step.model, del.Error)
			}
			*step.count = del.RowsAffected
		}

		return tx.Delete(&user).Error
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}
