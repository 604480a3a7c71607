package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/amarkin/studybot/internal/domain"
	"github.com/spf13/pflag"
)

// dateValue is a pflag.Value for optional YYYY-MM-DD flags. An empty value
// means "no date".
type dateValue struct {
	s *string
}

var _ pflag.Value = (*dateValue)(nil)

func newDateValue(target *string) *dateValue {
	return &dateValue{s: target}
}

func (d *dateValue) String() string {
	if d.s == nil {
		return ""
	}
	return *d.s
}

func (d *dateValue) Set(v string) error {
	v = strings.TrimSpace(v)
	if v == "" {
		*d.s = ""
		return nil
	}
	if _, err := time.Parse(domain.DayLayout, v); err != nil {
		return fmt.Errorf("date %q must be YYYY-MM-DD", v)
	}
	*d.s = v
	return nil
}

func (d *dateValue) Type() string {
	return "date"
}

func joinArgs(args []string) string {
	return strings.TrimSpace(strings.Join(args, " "))
}
