package serial

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"kurumsal-backend/internal/models"
	"kurumsal-backend/internal/store"
)

var (
	ErrSerialRequired = errors.New("serial_number zorunludur")
	ErrInvalidStatus  = errors.New("geçersiz status değeri")
	ErrInvalidDate    = errors.New("tarih formatı YYYY-MM-DD olmalıdır")
)

const dateLayout = "2006-01-02"

type CreateSerialInput struct {
	SerialNumber     string  `json:"serial_number"`
	ProductName      *string `json:"product_name"`
	Model            *string `json:"model"`
	ManufactureDate  *string `json:"manufacture_date"`
	InstallationDate *string `json:"installation_date"`
	Location         *string `json:"location"`
	Status           string  `json:"status"`
	Notes            *string `json:"notes"`
}

type UpdateSerialInput struct {
	SerialNumber     *string `json:"serial_number"`
	ProductName      *string `json:"product_name"`
	Model            *string `json:"model"`
	ManufactureDate  *string `json:"manufacture_date"`
	InstallationDate *string `json:"installation_date"`
	Location         *string `json:"location"`
	Status           *string `json:"status"`
	Notes            *string `json:"notes"`
}

// ImportResult: toplu içe aktarmanın satır bazlı toplam sonucu. Tek satırın
// hatası kalan satırları durdurmaz.
type ImportResult struct {
	Imported int      `json:"imported"`
	Failed   int      `json:"failed"`
	Errors   []string `json:"errors"`
}

// Service: serial kayıtları üzerindeki doğrulanmış mutasyon işlemleri.
type Service struct {
	store store.Store
}

func NewService(st store.Store) *Service {
	return &Service{store: st}
}

func (s *Service) Create(in CreateSerialInput) (*models.SerialNumber, error) {
	serialNo := strings.TrimSpace(in.SerialNumber)
	if serialNo == "" {
		return nil, ErrSerialRequired
	}

	status := models.SerialStatusActive
	if in.Status != "" {
		status = models.SerialStatus(strings.ToLower(strings.TrimSpace(in.Status)))
		if !models.ValidSerialStatus(status) {
			return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, in.Status)
		}
	}

	manufactureDate, err := parseDate(in.ManufactureDate)
	if err != nil {
		return nil, err
	}
	installationDate, err := parseDate(in.InstallationDate)
	if err != nil {
		return nil, err
	}

	sn := &models.SerialNumber{
		SerialNumber:     serialNo,
		ProductName:      trimPtr(in.ProductName),
		Model:            trimPtr(in.Model),
		ManufactureDate:  manufactureDate,
		InstallationDate: installationDate,
		Location:         trimPtr(in.Location),
		Status:           status,
		Notes:            trimPtr(in.Notes),
	}

	// Önden kontrol yok: uniqueness kararını insert anında store verir,
	// check-then-act eşzamanlı isteklerde güvenli değil
	if err := s.store.CreateSerial(sn); err != nil {
		return nil, err
	}
	return sn, nil
}

// Update: sadece gönderilen alanlar değişir, gönderilmeyenler eski değerini
// korur. updated_at store tarafından yenilenir.
func (s *Service) Update(id uint, in UpdateSerialInput) (*models.SerialNumber, error) {
	fields := map[string]interface{}{}

	if in.SerialNumber != nil {
		serialNo := strings.TrimSpace(*in.SerialNumber)
		if serialNo == "" {
			return nil, ErrSerialRequired
		}
		fields["serial_number"] = serialNo
	}
	if in.ProductName != nil {
		fields["product_name"] = trimPtr(in.ProductName)
	}
	if in.Model != nil {
		fields["model"] = trimPtr(in.Model)
	}
	if in.ManufactureDate != nil {
		d, err := parseDate(in.ManufactureDate)
		if err != nil {
			return nil, err
		}
		fields["manufacture_date"] = d
	}
	if in.InstallationDate != nil {
		d, err := parseDate(in.InstallationDate)
		if err != nil {
			return nil, err
		}
		fields["installation_date"] = d
	}
	if in.Location != nil {
		fields["location"] = trimPtr(in.Location)
	}
	if in.Status != nil {
		status := models.SerialStatus(strings.ToLower(strings.TrimSpace(*in.Status)))
		if !models.ValidSerialStatus(status) {
			return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, *in.Status)
		}
		fields["status"] = status
	}
	if in.Notes != nil {
		fields["notes"] = trimPtr(in.Notes)
	}

	return s.store.UpdateSerial(id, fields)
}

func (s *Service) Delete(id uint) error {
	return s.store.DeleteSerial(id)
}

// List: admin UI'ın mutasyon sonrası tam yeniden okuması. En yeni kayıt başta.
func (s *Service) List() ([]models.SerialNumber, error) {
	return s.store.ListSerials()
}

// Import: her satıra bağımsız Create uygular. Bir satırın hatası diğerlerini
// atlatmaz, toplam başarı/hata sayıları döner.
func (s *Service) Import(rows []CreateSerialInput) ImportResult {
	result := ImportResult{Errors: make([]string, 0)}

	for i, row := range rows {
		if _, err := s.Create(row); err != nil {
			result.Failed++
			result.Errors = append(result.Errors, fmt.Sprintf("satır %d (%s): %v", i+1, strings.TrimSpace(row.SerialNumber), err))
			continue
		}
		result.Imported++
	}

	return result
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

func parseDate(s *string) (*time.Time, error) {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, strings.TrimSpace(*s))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidDate, *s)
	}
	return &t, nil
}
