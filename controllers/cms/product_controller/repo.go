package product_controller

import (
	"github.com/ahmedanwarabdulaziz/mo3d-cms-backend/config"
	"github.com/ahmedanwarabdulaziz/mo3d-cms-backend/repository"
)

func repo() *repository.ProductRepository {
	return repository.NewProductRepository(config.DB)
}
