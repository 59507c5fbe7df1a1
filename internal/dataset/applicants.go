package dataset

// Applicants returns the five-applicant demo set the walkthrough runs on.
// Approval tracks income and credit score; the group approval rates differ
// on purpose so the group metrics have something to show.
func Applicants() *Frame {
	f, err := New(
		Num("income", 35000, 52000, 28000, 95000, 61000),
		Num("credit_score", 580, 640, 600, 720, 680),
		Num("age", 23, 31, 45, 38, 29),
		Num("loan_amount", 12000, 15000, 8000, 25000, 18000),
		Cat("gender", "female", "male", "female", "male", "female"),
		Cat("race", "black", "white", "asian", "white", "hispanic"),
		Num("approved", 0, 1, 0, 1, 1),
	)
	if err != nil {
		panic(err)
	}
	return f
}

// Justifications is the fixed business-justification record for every model
// variable that survives the prohibited-attribute drop.
func Justifications() map[string]string {
	return map[string]string{
		"income":       "Income measures capacity to repay the requested loan.",
		"credit_score": "Credit score summarizes documented repayment history.",
		"age":          "Age approximates credit-history length; kept under proxy monitoring.",
		"loan_amount":  "Loan amount sets the exposure being underwritten.",
	}
}
