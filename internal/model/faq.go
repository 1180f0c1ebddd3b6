package model

import "encoding/json"

// FAQEntry is one question/answer record of the knowledge base.
// Source records carry either pergunta/resposta or titulo/conteudo fields.
type FAQEntry struct {
	Question string
	Answer   string
}

// UnmarshalJSON accepts both field layouts of the knowledge file.
func (e *FAQEntry) UnmarshalJSON(data []byte) error {
	var raw struct {
		Pergunta string `json:"pergunta"`
		Resposta string `json:"resposta"`
		Titulo   string `json:"titulo"`
		Conteudo string `json:"conteudo"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	e.Question = raw.Pergunta
	if e.Question == "" {
		e.Question = raw.Titulo
	}
	e.Answer = raw.Resposta
	if e.Answer == "" {
		e.Answer = raw.Conteudo
	}
	return nil
}
