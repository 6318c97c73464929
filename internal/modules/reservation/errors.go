package reservation

import "errors"

var (
	ErrInvalidUser       = errors.New("reservation user has no persisted identity")
	ErrEquipmentNotFound = errors.New("reserved equipment does not exist")
	ErrAlreadyReserved   = errors.New("equipment already has an active reservation")
)
