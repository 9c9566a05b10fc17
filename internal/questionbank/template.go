package questionbank

// QuestionType distinguishes single-answer from multiple-answer questions.
type QuestionType string

const (
	QuestionTypeSingle   QuestionType = "single"
	QuestionTypeMultiple QuestionType = "multiple"
)

// TemplateAnswer is one answer option of a template.
type TemplateAnswer struct {
	Text    string
	Correct bool
}

// Template is a static, author-defined question definition.
type Template struct {
	Text        string
	Type        QuestionType
	Answers     []TemplateAnswer
	Explanation string
	Points      int
}

// single and multiple keep the catalogs below readable.
func single(text, explanation string, answers ...TemplateAnswer) Template {
	return Template{Text: text, Type: QuestionTypeSingle, Answers: answers, Explanation: explanation, Points: 1}
}

func multiple(text, explanation string, answers ...TemplateAnswer) Template {
	return Template{Text: text, Type: QuestionTypeMultiple, Answers: answers, Explanation: explanation, Points: 1}
}

func right(text string) TemplateAnswer { return TemplateAnswer{Text: text, Correct: true} }
func wrong(text string) TemplateAnswer { return TemplateAnswer{Text: text} }
