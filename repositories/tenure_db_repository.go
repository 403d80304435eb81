package repositories

type TenureDbRepository struct{}

func NewTenureDbRepository() *TenureDbRepository {
	return &TenureDbRepository{}
}
