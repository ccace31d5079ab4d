package usage

import "errors"

// ErrQuotaExhausted is returned when a user has no generations left for the current month.
var ErrQuotaExhausted = errors.New("generation quota exhausted")

// MonthlyAllowance is the number of plan generations granted per month.
const MonthlyAllowance = 50
