package serial

import (
	"kurumsal-backend/internal/models"
	"kurumsal-backend/internal/store"
)

// mockStore: store.Store'un elle yazılmış test çifti. Fonksiyon alanı
// verilmeyen çağrılar ErrNotFound döner; çağrı sayaçları "store'a hiç
// gidilmedi" türü asserionlar için tutuluyor.
type mockStore struct {
	findSerialFn       func(query string) (*models.SerialNumber, error)
	productForSerialFn func(sn *models.SerialNumber) (*models.Product, error)
	getSerialFn        func(id uint) (*models.SerialNumber, error)
	listSerialsFn      func() ([]models.SerialNumber, error)
	createSerialFn     func(sn *models.SerialNumber) error
	updateSerialFn     func(id uint, fields map[string]interface{}) (*models.SerialNumber, error)
	deleteSerialFn     func(id uint) error

	findSerialCalls   int
	productCalls      int
	createSerialCalls int
	updateSerialCalls int
	deleteSerialCalls int
	listSerialsCalls  int
}

var _ store.Store = (*mockStore)(nil)

func (m *mockStore) FindSerial(query string) (*models.SerialNumber, error) {
	m.findSerialCalls++
	if m.findSerialFn == nil {
		return nil, store.ErrNotFound
	}
	return m.findSerialFn(query)
}

func (m *mockStore) ProductForSerial(sn *models.SerialNumber) (*models.Product, error) {
	m.productCalls++
	if m.productForSerialFn == nil {
		return nil, store.ErrNotFound
	}
	return m.productForSerialFn(sn)
}

func (m *mockStore) GetSerial(id uint) (*models.SerialNumber, error) {
	if m.getSerialFn == nil {
		return nil, store.ErrNotFound
	}
	return m.getSerialFn(id)
}

func (m *mockStore) ListSerials() ([]models.SerialNumber, error) {
	m.listSerialsCalls++
	if m.listSerialsFn == nil {
		return []models.SerialNumber{}, nil
	}
	return m.listSerialsFn()
}

func (m *mockStore) CreateSerial(sn *models.SerialNumber) error {
	m.createSerialCalls++
	if m.createSerialFn == nil {
		return nil
	}
	return m.createSerialFn(sn)
}

func (m *mockStore) UpdateSerial(id uint, fields map[string]interface{}) (*models.SerialNumber, error) {
	m.updateSerialCalls++
	if m.updateSerialFn == nil {
		return nil, store.ErrNotFound
	}
	return m.updateSerialFn(id, fields)
}

func (m *mockStore) DeleteSerial(id uint) error {
	m.deleteSerialCalls++
	if m.deleteSerialFn == nil {
		return store.ErrNotFound
	}
	return m.deleteSerialFn(id)
}

func strPtr(s string) *string {
	return &s
}
