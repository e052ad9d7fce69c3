package quotation_controller

import (
	"github.com/ahmedanwarabdulaziz/mo3d-cms-backend/config"
	"github.com/ahmedanwarabdulaziz/mo3d-cms-backend/repository"
)

func repo() *repository.QuotationRepository {
	return repository.NewQuotationRepository(config.DB)
}
