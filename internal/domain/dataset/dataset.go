// Package dataset holds the registered dataset entity.
package dataset

import (
	"strings"

	"secdesk/internal/shared/errors"
)

// Dataset is a named data asset. Owner is a weak reference to a username.
type Dataset struct {
	id    uint
	name  string
	owner string
}

func NewDataset(name, owner string) (*Dataset, error) {
	if strings.TrimSpace(name) == "" {
		return nil, errors.NewValidationError("name is required")
	}
	if strings.TrimSpace(owner) == "" {
		return nil, errors.NewValidationError("owner is required")
	}
	return &Dataset{
		name:  strings.TrimSpace(name),
		owner: strings.TrimSpace(owner),
	}, nil
}

// Reconstruct rebuilds a dataset from persistence without re-validating.
func Reconstruct(id uint, name, owner string) *Dataset {
	return &Dataset{id: id, name: name, owner: owner}
}

func (d *Dataset) ID() uint      { return d.id }
func (d *Dataset) Name() string  { return d.name }
func (d *Dataset) Owner() string { return d.owner }

func (d *Dataset) SetID(id uint) {
	d.id = id
}

func (d *Dataset) Rename(name string) error {
	if strings.TrimSpace(name) == "" {
		return errors.NewValidationError("name is required")
	}
	d.name = strings.TrimSpace(name)
	return nil
}

func (d *Dataset) TransferOwnership(owner string) error {
	if strings.TrimSpace(owner) == "" {
		return errors.NewValidationError("owner is required")
	}
	d.owner = strings.TrimSpace(owner)
	return nil
}
