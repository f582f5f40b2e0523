package memory

import repo "github.com/baharkarakas/exercise-tracker/internal/repository"

type Repositories struct {
	Users repo.Users
}

func NewRepositories() Repositories {
	return Repositories{
		Users: NewUsers(),
	}
}
