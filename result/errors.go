package result

import "github.com/skolapp/backend/srvcerror"

const ErrCodeNoResultsFound = "no_results_found"

func ErrNoResultsFound() *srvcerror.Error {
	return srvcerror.NewNotFound(
		ErrCodeNoResultsFound,
		"no results were found for this exam and student",
	)
}
