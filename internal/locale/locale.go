package locale

import "kurumsal-backend/internal/models"

// Language: sitenin iki dili. Tanınmayan her değer fallback dile (en) düşer,
// projeksiyon hiçbir dil kodunda hata üretmez.
type Language string

const (
	LanguageKo Language = "ko"
	LanguageEn Language = "en"
)

func Parse(s string) Language {
	if s == string(LanguageKo) {
		return LanguageKo
	}
	return LanguageEn
}

func pick(lang Language, ko, en string) string {
	if lang == LanguageKo {
		return ko
	}
	return en
}

func pickPtr(lang Language, ko, en *string) *string {
	if lang == LanguageKo {
		return ko
	}
	return en
}

func pickList(lang Language, ko, en []string) []string {
	if lang == LanguageKo {
		return ko
	}
	return en
}

// PublicStatus: admin tarafındaki status kümesini public aramanın gösterdiği
// kümeye çevirir. inactive ve discontinued dışarıya "retired" olarak çıkar.
func PublicStatus(s models.SerialStatus) string {
	switch s {
	case models.SerialStatusInactive, models.SerialStatusDiscontinued:
		return "retired"
	default:
		return string(s)
	}
}

type CategoryView struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Icon        *string `json:"icon"`
}

type ProductView struct {
	ID             uint                   `json:"id"`
	Name           string                 `json:"name"`
	Description    *string                `json:"description"`
	Features       []string               `json:"features"`
	Specifications map[string]interface{} `json:"specifications"`
	ImageURL       *string                `json:"image_url"`
	Category       *CategoryView          `json:"category"`
}

// ProjectCategory: kaynak kaydı değiştirmez, salt okunur bir görünüm döner.
func ProjectCategory(c *models.Category, lang Language) *CategoryView {
	if c == nil {
		return nil
	}
	return &CategoryView{
		ID:          c.ID,
		Name:        pick(lang, c.NameKo, c.NameEn),
		Description: pickPtr(lang, c.DescriptionKo, c.DescriptionEn),
		Icon:        c.Icon,
	}
}

func ProjectProduct(p *models.Product, lang Language) *ProductView {
	if p == nil {
		return nil
	}
	return &ProductView{
		ID:             p.ID,
		Name:           pick(lang, p.NameKo, p.NameEn),
		Description:    pickPtr(lang, p.DescriptionKo, p.DescriptionEn),
		Features:       pickList(lang, p.FeaturesKo, p.FeaturesEn),
		Specifications: p.Specifications,
		ImageURL:       p.ImageURL,
		Category:       ProjectCategory(p.Category, lang),
	}
}
