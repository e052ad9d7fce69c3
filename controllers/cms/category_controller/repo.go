package category_controller

import (
	"github.com/ahmedanwarabdulaziz/mo3d-cms-backend/config"
	"github.com/ahmedanwarabdulaziz/mo3d-cms-backend/repository"
)

func repo() *repository.CategoryRepository {
	return repository.NewCategoryRepository(config.DB)
}
