package workflow

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var ErrStepNotFound = errors.New("workflow step not found")

// StepRepository drives the fixed linear workflow step list.
type StepRepository interface {
	List() ([]Step, error)
	GetByKey(key string) (*Step, error)
	SetStatus(key string, status StepStatus) (*Step, error)
	ResetAll() error
}

type stepRepository struct {
	db *gorm.DB
}

func NewStepRepository(db *gorm.DB) StepRepository {
	return &stepRepository{db: db}
}

func (r *stepRepository) List() ([]Step, error) {
	var steps []Step
	res := r.db.Order("position asc").Find(&steps)
	if res.Error != nil {
		return nil, res.Error
	}
	return steps, nil
}

func (r *stepRepository) GetByKey(key string) (*Step, error) {
	var step Step
	res := r.db.Where("key = ?", key).Take(&step)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrStepNotFound, key)
		}
		return nil, res.Error
	}
	return &step, nil
}

func (r *stepRepository) SetStatus(key string, status StepStatus) (*Step, error) {
	if !ValidStatus(status) {
		return nil, fmt.Errorf("invalid step status %q", status)
	}
	step, err := r.GetByKey(key)
	if err != nil {
		return nil, err
	}
	step.Status = status
	if err := r.db.Save(step).Error; err != nil {
		return nil, err
	}
	return step, nil
}

func (r *stepRepository) ResetAll() error {
	return r.db.Model(&Step{}).Where("1 = 1").Update("status", StatusNotStarted).Error
}
