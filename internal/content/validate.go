package content

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/go-playground/validator/v10"
)

// RegisterValidators adds the content-specific tags to v.
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("href", ValidHref)
	_ = v.RegisterValidation("imgsrc", ValidImageSrc)
}

// ValidImageSrc accepts site-rooted paths such as "/images/me.jpg" and
// absolute http(s) URLs.
func ValidImageSrc(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true
	}
	if strings.HasPrefix(val, "/") && !strings.HasPrefix(val, "//") {
		return true
	}
	u, err := url.Parse(val)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// ValidHref accepts absolute http(s) or mailto URLs and in-page "#"
// placeholders.
func ValidHref(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true
	}
	if strings.HasPrefix(val, "#") {
		return true
	}
	u, err := url.Parse(val)
	if err != nil {
		return false
	}
	switch u.Scheme {
	case "http", "https":
		return u.Host != ""
	case "mailto":
		return u.Opaque != ""
	}
	return false
}

func newValidator() *validator.Validate {
	v := validator.New()
	RegisterValidators(v)
	return v
}

// Validate checks the struct-level invariants of p.
func Validate(p *Portfolio) error {
	if err := newValidator().Struct(p); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag()))
			}
			return fmt.Errorf("invalid portfolio: %s", strings.Join(msgs, "; "))
		}
		return err
	}
	return nil
}
