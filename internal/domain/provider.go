package domain

import "strings"

type Provider string

const (
	Mailchimp   Provider = "mailchimp"
	GetResponse Provider = "getresponse"
)

func (p Provider) IsValid() bool {
	switch p {
	case Mailchimp, GetResponse:
		return true
	}
	return false
}

// Title returns the display name used in response messages, e.g. "Mailchimp".
func (p Provider) Title() string {
	s := string(p)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func (p Provider) String() string {
	return string(p)
}

func ParseProvider(s string) (Provider, error) {
	p := Provider(s)
	if !p.IsValid() {
		return "", ErrUnknownProvider
	}
	return p, nil
}
