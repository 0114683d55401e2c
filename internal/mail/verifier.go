package mail

import (
	"gopkg.in/gomail.v2"
)

// Verifier checks that an SMTP account accepts connections. No mail is
// sent; campaign delivery is handled elsewhere.
type Verifier interface {
	Verify(host string, port int, username, password string) error
}

type smtpVerifier struct{}

// NewSMTPVerifier returns a gomail-backed verifier.
func NewSMTPVerifier() Verifier {
	return smtpVerifier{}
}

func (smtpVerifier) Verify(host string, port int, username, password string) error {
	d := gomail.NewDialer(host, port, username, password)
	closer, err := d.Dial()
	if err != nil {
		return err
	}
	return closer.Close()
}
