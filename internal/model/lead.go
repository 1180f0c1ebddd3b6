package model

// Lead is the structured contact data extracted during a sales turn.
// Every field is independently optional; absence is nil, never "".
type Lead struct {
	Nome     *string `json:"nome"`
	Telefone *string `json:"telefone"`
	Email    *string `json:"email"`
	Empresa  *string `json:"empresa"`
}

// Complete reports whether the lead has enough data to act on:
// a name plus at least one contact channel (phone or email).
func (l Lead) Complete() bool {
	return present(l.Nome) && (present(l.Telefone) || present(l.Email))
}

// Empty reports whether no field was extracted at all.
func (l Lead) Empty() bool {
	return !present(l.Nome) && !present(l.Telefone) && !present(l.Email) && !present(l.Empresa)
}

func present(s *string) bool {
	return s != nil && *s != ""
}
