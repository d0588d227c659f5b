package catalog

// User is one entry of the financial-literacy scoreboard. FinScore is
// authored independently of the four sub-metrics.
type User struct {
	ID                    int     `json:"id"`
	Name                  string  `json:"name"`
	FinScore              float64 `json:"finScore"`
	BudgetAdherence       int     `json:"budgetAdherence"`
	SavingProgress        int     `json:"savingProgress"`
	InvestmentPerformance int     `json:"investmentPerformance"`
	QuizScore             int     `json:"quizScore"`
}

// QuizQuestion is a multiple-choice question. Options are in display order
// and CorrectAnswer is a zero-based index into them.
type QuizQuestion struct {
	ID            int      `json:"id"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
}
