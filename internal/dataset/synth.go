package dataset

import (
	"math/rand"

	"github.com/bxcodec/faker/v3"
	"github.com/pkg/errors"
)

// syntheticApplicant drives faker's tag-based generation of one record.
type syntheticApplicant struct {
	Income      int    `faker:"boundary_start=22000, boundary_end=120000"`
	CreditScore int    `faker:"boundary_start=520, boundary_end=790"`
	Age         int    `faker:"boundary_start=21, boundary_end=64"`
	LoanAmount  int    `faker:"boundary_start=4000, boundary_end=38000"`
	Gender      string `faker:"oneof: female, male"`
	Race        string `faker:"oneof: white, black, asian, hispanic"`
}

// Synthesize fabricates applicant records with the same seven-column layout
// as Applicants, so the walkthrough can be re-run on sets larger than the
// toy one. Labels follow a fixed underwriting rule: approval needs a credit
// score of at least 640 and an income of at least 30000. The same seed
// reproduces the same records.
func Synthesize(rows int, seed int64) (*Frame, error) {
	if rows < 1 {
		return nil, errors.New("synthesize needs at least one row")
	}
	faker.SetRandomSource(rand.NewSource(seed))

	income := make([]float64, rows)
	creditScore := make([]float64, rows)
	age := make([]float64, rows)
	loanAmount := make([]float64, rows)
	gender := make([]string, rows)
	race := make([]string, rows)
	approved := make([]float64, rows)

	for i := 0; i < rows; i++ {
		var a syntheticApplicant
		if err := faker.FakeData(&a); err != nil {
			return nil, errors.Wrap(err, "fake applicant")
		}
		income[i] = float64(a.Income)
		creditScore[i] = float64(a.CreditScore)
		age[i] = float64(a.Age)
		loanAmount[i] = float64(a.LoanAmount)
		gender[i] = a.Gender
		race[i] = a.Race
		if a.CreditScore >= 640 && a.Income >= 30000 {
			approved[i] = 1
		}
	}

	return New(
		Num("income", income...),
		Num("credit_score", creditScore...),
		Num("age", age...),
		Num("loan_amount", loanAmount...),
		Cat("gender", gender...),
		Cat("race", race...),
		Num("approved", approved...),
	)
}
