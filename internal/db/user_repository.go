package db

import (
	"errors"

	"github.com/ogould/fittrack/internal/models"
	"gorm.io/gorm"
)

type UserRepository struct {
	database *gorm.DB
}

func NewUserRepository(database *gorm.DB) *UserRepository {
	return &UserRepository{database: database}
}

func (repo *UserRepository) CountUsers() (int64, error) {
	var count int64
	if err := repo.database.Model(&models.User{}).Count(&count).Error; err != nil {
		return 0, translateError(err)
	}
	return count, nil
}

func (repo *UserRepository) FindByID(userID uint) (models.User, error) {
	var user models.User
	if err := repo.database.First(&user, userID).Error; err != nil {
		return models.User{}, translateError(err)
	}
	return user, nil
}

// FindByNormalizedUsername looks the user up ignoring case and surrounding
// whitespace, matching the COLLATE NOCASE uniqueness on the column.
func (repo *UserRepository) FindByNormalizedUsername(username string) (models.User, error) {
	var user models.User
	if err := repo.database.Where("lower(trim(username)) = ?", username).First(&user).Error; err != nil {
		return models.User{}, translateError(err)
	}
	return user, nil
}

func (repo *UserRepository) ExistsByNormalizedUsername(username string) (bool, error) {
	var matched int64
	if err := repo.database.Model(&models.User{}).
		Where("lower(trim(username)) = ?", username).
		Count(&matched).Error; err != nil {
		return false, translateError(err)
	}
	return matched > 0, nil
}

func (repo *UserRepository) Create(user *models.User) error {
	err := repo.database.Create(user).Error
	if err == nil {
		return nil
	}
	translated := translateError(err)
	if errors.Is(translated, ErrConstraintViolation) {
		return ErrDuplicateUser
	}
	return translated
}

func (repo *UserRepository) Save(user *models.User) error {
	return translateError(repo.database.Save(user).Error)
}

func (repo *UserRepository) UpdatePassword(userID uint, passwordHash string) error {
	return translateError(repo.database.Model(&models.User{}).
		Where("id = ?", userID).
		Update("password_hash", passwordHash).Error)
}

func (repo *UserRepository) ListAll() ([]models.User, error) {
	users := make([]models.User, 0)
	if err := repo.database.Order("id ASC").Find(&users).Error; err != nil {
		return nil, translateError(err)
	}
	return users, nil
}

// DeleteAccountAndRelatedData removes the user and everything owned by the
// account in one transaction: logs, owned catalog entries, the body profile,
// then the user row itself.
func (repo *UserRepository) DeleteAccountAndRelatedData(userID uint) error {
	err := repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&models.MealLog{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.WorkoutLog{}).Error; err != nil {
			return err
		}
		if err := tx.Where("owner_id = ?", userID).Delete(&models.Meal{}).Error; err != nil {
			return err
		}
		if err := tx.Where("owner_id = ?", userID).Delete(&models.Workout{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.Profile{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.User{}, userID).Error
	})
	return translateError(err)
}
