package catalog

var mockUsers = []User{
	{
		ID:                    1,
		Name:                  "Alice Johnson",
		FinScore:              75.5,
		BudgetAdherence:       82,
		SavingProgress:        68,
		InvestmentPerformance: 71,
		QuizScore:             85,
	},
	{
		ID:                    2,
		Name:                  "Bob Smith",
		FinScore:              68.2,
		BudgetAdherence:       75,
		SavingProgress:        62,
		InvestmentPerformance: 65,
		QuizScore:             78,
	},
	{
		ID:                    3,
		Name:                  "Carol Williams",
		FinScore:              82.1,
		BudgetAdherence:       88,
		SavingProgress:        79,
		InvestmentPerformance: 76,
		QuizScore:             92,
	},
	{
		ID:                    4,
		Name:                  "David Brown",
		FinScore:              59.8,
		BudgetAdherence:       65,
		SavingProgress:        55,
		InvestmentPerformance: 58,
		QuizScore:             70,
	},
	{
		ID:                    5,
		Name:                  "Emma Davis",
		FinScore:              91.3,
		BudgetAdherence:       95,
		SavingProgress:        88,
		InvestmentPerformance: 89,
		QuizScore:             96,
	},
}

var mockQuestions = []QuizQuestion{
	{
		ID:            1,
		Question:      "What is the recommended percentage of your income to save?",
		Options:       []string{"5-10%", "10-20%", "20-30%", "30-40%"},
		CorrectAnswer: 1,
	},
	{
		ID:       2,
		Question: "What is compound interest?",
		Options: []string{
			"Interest calculated only on the principal",
			"Interest calculated on principal and previously earned interest",
			"A type of loan",
			"A savings account type",
		},
		CorrectAnswer: 1,
	},
	{
		ID:       3,
		Question: "What is an emergency fund?",
		Options: []string{
			"Money for vacations",
			"Money set aside for unexpected expenses",
			"Investment account",
			"Credit card limit",
		},
		CorrectAnswer: 1,
	},
	{
		ID:       4,
		Question: "What does APR stand for?",
		Options: []string{
			"Annual Payment Rate",
			"Annual Percentage Rate",
			"Average Payment Rate",
			"Applied Percentage Rate",
		},
		CorrectAnswer: 1,
	},
	{
		ID:       5,
		Question: "What is the 50/30/20 budget rule?",
		Options: []string{
			"50% needs, 30% wants, 20% savings",
			"50% savings, 30% needs, 20% wants",
			"50% wants, 30% needs, 20% savings",
			"50% needs, 30% savings, 20% wants",
		},
		CorrectAnswer: 0,
	},
}
