package signup

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Config carries the signup module settings, loadable from the environment
// with the config package.
type Config struct {
	// FormName labels recorded submissions and notifications.
	FormName string `env:"SIGNUP_FORM_NAME" envDefault:"signup"`

	// DraftTTL is the retention window for saved drafts.
	DraftTTL time.Duration `env:"SIGNUP_DRAFT_TTL" envDefault:"24h"`

	// AvatarMaxSize caps accepted avatar uploads, in bytes.
	AvatarMaxSize int64 `env:"SIGNUP_AVATAR_MAX_SIZE" envDefault:"2097152"`

	// PasswordCost is the bcrypt work factor for stored password hashes.
	PasswordCost int `env:"SIGNUP_PASSWORD_COST" envDefault:"10"`
}

// withDefaults fills zero values so a literal Config{} behaves like the
// documented environment defaults.
func (c Config) withDefaults() Config {
	if c.FormName == "" {
		c.FormName = "signup"
	}
	if c.DraftTTL <= 0 {
		c.DraftTTL = 24 * time.Hour
	}
	if c.AvatarMaxSize <= 0 {
		c.AvatarMaxSize = 2 << 20
	}
	if c.PasswordCost < bcrypt.MinCost || c.PasswordCost > bcrypt.MaxCost {
		c.PasswordCost = bcrypt.DefaultCost
	}
	return c
}
