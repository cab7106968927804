package domain

import "fmt"

// Scope identifies where a policy threshold override applies.
type Scope struct {
	Guild   string `validate:"required"`
	Channel string `validate:"required"`
}

func (s Scope) String() string {
	return fmt.Sprintf("%s/%s", s.Guild, s.Channel)
}
