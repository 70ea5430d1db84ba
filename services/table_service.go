package services

import (
	"restaurant-ops/apperr"
	"restaurant-ops/models"
	"restaurant-ops/repository"
)

// TableService is the table registry and coordinator. Reserve and Release
// are atomic per table id; nothing here tracks order state, and the ledger
// calls Release explicitly when an order terminates.
type TableService struct {
	tables repository.TableRepository
	locks  *keyedMutex
}

func NewTableService(tables repository.TableRepository) *TableService {
	return &TableService{tables: tables, locks: newKeyedMutex()}
}

type TablePatch struct {
	TableNumber *int                `json:"table_number,omitempty"`
	Capacity    *int                `json:"capacity,omitempty"`
	Status      *models.TableStatus `json:"status,omitempty"`
	Location    *string             `json:"location,omitempty"`
	Description *string             `json:"description,omitempty"`
}

func (s *TableService) AddTable(table models.Table) (*models.Table, error) {
	if table.TableNumber <= 0 {
		return nil, apperr.InvalidArgument("table number must be positive")
	}
	if table.Capacity <= 0 {
		return nil, apperr.InvalidArgument("table capacity must be positive")
	}
	if table.Status == "" {
		table.Status = models.TableStatusAvailable
	}
	if !table.Status.Valid() {
		return nil, apperr.InvalidArgument("unknown table status %q", table.Status)
	}
	if _, taken := s.tables.FindByNumber(table.TableNumber); taken {
		return nil, apperr.Conflict("table number %d is already in use", table.TableNumber)
	}
	saved, err := s.tables.Save(table)
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

func (s *TableService) UpdateTable(id string, patch TablePatch) (*models.Table, error) {
	unlock := s.locks.Lock(id)
	defer unlock()

	table, ok := s.tables.FindByID(id)
	if !ok {
		return nil, apperr.NotFound("table %q does not exist", id)
	}
	if patch.TableNumber != nil {
		if *patch.TableNumber <= 0 {
			return nil, apperr.InvalidArgument("table number must be positive")
		}
		if other, taken := s.tables.FindByNumber(*patch.TableNumber); taken && other.ID != id {
			return nil, apperr.Conflict("table number %d is already in use", *patch.TableNumber)
		}
		table.TableNumber = *patch.TableNumber
	}
	if patch.Capacity != nil {
		if *patch.Capacity <= 0 {
			return nil, apperr.InvalidArgument("table capacity must be positive")
		}
		table.Capacity = *patch.Capacity
	}
	if patch.Status != nil {
		if !patch.Status.Valid() {
			return nil, apperr.InvalidArgument("unknown table status %q", *patch.Status)
		}
		table.Status = *patch.Status
	}
	if patch.Location != nil {
		table.Location = *patch.Location
	}
	if patch.Description != nil {
		table.Description = *patch.Description
	}
	if err := s.tables.Update(table); err != nil {
		return nil, err
	}
	return &table, nil
}

func (s *TableService) DeleteTable(id string) error {
	if !s.tables.Delete(id) {
		return apperr.NotFound("table %q does not exist", id)
	}
	return nil
}

func (s *TableService) GetTable(id string) (models.Table, error) {
	table, ok := s.tables.FindByID(id)
	if !ok {
		return models.Table{}, apperr.NotFound("table %q does not exist", id)
	}
	return table, nil
}

func (s *TableService) ListTables() []models.Table {
	return s.tables.FindAll()
}

// Reserve marks the table RESERVED. Reserving an already-RESERVED table is
// refused with Conflict and leaves the table untouched; the check and the
// write happen under the table's lock so two concurrent reservations cannot
// both win.
func (s *TableService) Reserve(tableID string) error {
	unlock := s.locks.Lock(tableID)
	defer unlock()

	table, ok := s.tables.FindByID(tableID)
	if !ok {
		return apperr.NotFound("table %q does not exist", tableID)
	}
	if table.Status == models.TableStatusReserved {
		return apperr.Conflict("table %d is already reserved", table.TableNumber)
	}
	table.Status = models.TableStatusReserved
	return s.tables.Update(table)
}

// Release puts the table back to AVAILABLE.
func (s *TableService) Release(tableID string) error {
	unlock := s.locks.Lock(tableID)
	defer unlock()

	table, ok := s.tables.FindByID(tableID)
	if !ok {
		return apperr.NotFound("table %q does not exist", tableID)
	}
	table.Status = models.TableStatusAvailable
	return s.tables.Update(table)
}
