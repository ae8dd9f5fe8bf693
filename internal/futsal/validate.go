package futsal

import (
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/lucasb-eyer/go-colorful"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

func validateStruct(what string, v any) error {
	if err := getValidator().Struct(v); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidArgument, what, err)
	}
	return nil
}

func (t *Tournament) Normalize() {
	t.Name = strings.TrimSpace(t.Name)
}

func (t Tournament) Validate() error {
	if t.Date.IsZero() {
		return fmt.Errorf("%w: tournament: no date", ErrInvalidArgument)
	}
	if !t.Date.Valid() {
		return fmt.Errorf("%w: tournament: invalid date %v", ErrInvalidArgument, t.Date)
	}
	return validateStruct("tournament", t)
}

func (p *Player) Normalize() {
	p.Name = strings.TrimSpace(p.Name)
}

func (p Player) Validate() error {
	return validateStruct("player", p)
}

func (t *Team) Normalize() {
	t.Name = strings.TrimSpace(t.Name)
	t.Color = NormalizeColor(t.Color)
}

func (t Team) Validate() error {
	return validateStruct("team", t)
}

func (s Score) Validate() error {
	return validateStruct("score", s)
}

// NormalizeColor turns a kit colour into lowercase #rrggbb form. Short #rgb
// forms are expanded. Values that are not hex colours are returned trimmed
// but otherwise unchanged, so that validation can reject them.
func NormalizeColor(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return s
	}
	return c.Hex()
}
