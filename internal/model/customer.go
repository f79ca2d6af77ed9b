package model

import "strings"

// Customer is identified by phone number; it is created on the first order
// from that phone and reused afterwards.
type Customer struct {
	ID      int64   `json:"id" db:"id_cliente"`
	Name    string  `json:"name" db:"nombre"`
	Phone   string  `json:"phone" db:"telefono"`
	Email   *string `json:"email,omitempty" db:"email"`
	Address *string `json:"address,omitempty" db:"direccion"`
}

func trim(s string) string {
	return strings.TrimSpace(s)
}

// trimOptional trims the value and maps blank strings to nil.
func trimOptional(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
