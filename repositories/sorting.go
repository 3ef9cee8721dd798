package repositories

// sortColumn returns requested if it is one of the allowed columns, otherwise
// fallback. Sort parameters reach SQL verbatim, so they are allowlisted here.
func sortColumn(requested, fallback string, allowed ...string) string {
	for _, col := range allowed {
		if requested == col {
			return requested
		}
	}
	return fallback
}

func sortDirection(requested string) string {
	if requested == "asc" {
		return "asc"
	}
	return "desc"
}
