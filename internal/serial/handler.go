package serial

import (
	"errors"
	"log"
	"net/url"
	"strconv"

	"kurumsal-backend/internal/audit"
	"kurumsal-backend/internal/locale"
	"kurumsal-backend/internal/models"
	"kurumsal-backend/internal/store"

	"github.com/gofiber/fiber/v2"
)

type ImportRequest struct {
	Rows []CreateSerialInput `json:"rows"`
}

// GET /api/search-serial/:serial?lang=ko|en (public, widget cross-origin çağırır)
// Hata gövdesi { "error": msg }: 400 boş sorgu, 404 eşleşme yok, 500 altyapı.
func SearchSerialHandler(r *Resolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		query, err := decodeParam(c, "serial")
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Serial number is required")
		}
		if query == "" {
			// Widget path segment gönderir, eski form tabanlı arama serial
			// alanını form/query üzerinden yollar
			query = c.FormValue("serial")
		}
		lang := locale.Parse(c.Query("lang"))

		result, err := r.Resolve(query)
		if err != nil {
			if errors.Is(err, ErrEmptyQuery) {
				return fiber.NewError(fiber.StatusBadRequest, "Serial number is required")
			}
			if errors.Is(err, store.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Serial number not found")
			}
			log.Println("Serial arama altyapı hatası:", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Internal server error")
		}

		return c.JSON(BuildSearchResponse(result, lang))
	}
}

// GET /api/admin/serial-numbers (en yeni kayıt başta)
func ListSerialNumbersHandler(s *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		serials, err := s.List()
		if err != nil {
			log.Println("Serial listesi okunamadı:", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Serial number listesi okunamadı")
		}

		res := make([]SerialRecordResponse, 0, len(serials))
		for i := range serials {
			res = append(res, buildSerialRecordResponse(&serials[i]))
		}
		return c.JSON(res)
	}
}

// GET /api/admin/serial-numbers/:id/resolve?lang=
// Public aramayla birebir aynı kontrat şeklini döner.
func ResolveSerialNumberHandler(r *Resolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseID(c)
		if err != nil {
			return err
		}
		lang := locale.Parse(c.Query("lang"))

		result, err := r.ResolveByID(id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Serial number bulunamadı")
			}
			log.Println("Serial detay altyapı hatası:", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Serial number okunamadı")
		}

		return c.JSON(BuildSearchResponse(result, lang))
	}
}

// POST /api/admin/serial-numbers
func CreateSerialNumberHandler(s *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateSerialInput
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		sn, err := s.Create(body)
		if err != nil {
			return mapMutationError(err)
		}

		audit.WriteSerialLog(c, models.AuditActionCreate, sn.ID, "Serial number eklendi: "+sn.SerialNumber, nil, sn)

		return c.Status(fiber.StatusCreated).JSON(buildSerialRecordResponse(sn))
	}
}

// PUT /api/admin/serial-numbers/:id
func UpdateSerialNumberHandler(s *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseID(c)
		if err != nil {
			return err
		}

		var body UpdateSerialInput
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		sn, err := s.Update(id, body)
		if err != nil {
			return mapMutationError(err)
		}

		audit.WriteSerialLog(c, models.AuditActionUpdate, sn.ID, "Serial number güncellendi: "+sn.SerialNumber, nil, sn)

		return c.JSON(buildSerialRecordResponse(sn))
	}
}

// DELETE /api/admin/serial-numbers/:id
// Var olmayan id 404 döner ki admin UI "zaten silinmiş"i ayırt edebilsin.
func DeleteSerialNumberHandler(s *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseID(c)
		if err != nil {
			return err
		}

		if err := s.Delete(id); err != nil {
			return mapMutationError(err)
		}

		audit.WriteSerialLog(c, models.AuditActionDelete, id, "Serial number silindi", nil, nil)

		return c.SendStatus(fiber.StatusNoContent)
	}
}

// POST /api/admin/serial-numbers/import
// Satırlar client tarafında parse edilmiş halde gelir (Excel okuma dışarıda).
func ImportSerialNumbersHandler(s *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body ImportRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}
		if len(body.Rows) == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "İçe aktarılacak satır yok")
		}

		result := s.Import(body.Rows)

		audit.WriteSerialLog(c, models.AuditActionImport, 0,
			"Toplu içe aktarma: "+strconv.Itoa(result.Imported)+" başarılı, "+strconv.Itoa(result.Failed)+" hatalı", nil, result)

		return c.JSON(result)
	}
}

func parseID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return 0, fiber.NewError(fiber.StatusBadRequest, "Geçersiz id")
	}
	return uint(id), nil
}

func decodeParam(c *fiber.Ctx, name string) (string, error) {
	raw := c.Params(name)
	if raw == "" {
		return "", nil
	}
	// Path segment'i URL-encoded gelebilir (örn. %20)
	return url.PathUnescape(raw)
}

func mapMutationError(err error) error {
	switch {
	case errors.Is(err, ErrSerialRequired), errors.Is(err, ErrInvalidStatus), errors.Is(err, ErrInvalidDate):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	case errors.Is(err, store.ErrDuplicateSerial):
		return fiber.NewError(fiber.StatusConflict, "Bu serial number zaten kayıtlı")
	case errors.Is(err, store.ErrNotFound):
		return fiber.NewError(fiber.StatusNotFound, "Serial number bulunamadı")
	default:
		log.Println("Serial mutasyon altyapı hatası:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "İşlem tamamlanamadı")
	}
}
