package handlers

import "strconv"

// FlexNumber aceita número JSON (45.0) ou string numérica ("45.00"),
// já que os formulários enviam os dois formatos.
type FlexNumber string

func (n *FlexNumber) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	if s == "null" {
		s = ""
	}
	*n = FlexNumber(s)
	return nil
}

func (n FlexNumber) Float64() (float64, error) {
	return strconv.ParseFloat(string(n), 64)
}

func (n FlexNumber) Int() (int, error) {
	return strconv.Atoi(string(n))
}
