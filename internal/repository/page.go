package repository

const (
	DefaultPage = 1
	MaxPerPage  = 100
)

// paginate clamps page/perPage and converts them to limit/offset.
func paginate(page, perPage int) (limit, offset int) {
	if page < DefaultPage {
		page = DefaultPage
	}
	if perPage < 1 {
		perPage = 1
	}
	if perPage > MaxPerPage {
		perPage = MaxPerPage
	}
	return perPage, perPage * (page - 1)
}
