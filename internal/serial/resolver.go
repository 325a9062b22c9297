package serial

import (
	"errors"
	"strings"

	"kurumsal-backend/internal/models"
	"kurumsal-backend/internal/store"
)

// ErrEmptyQuery: boş ya da sadece whitespace olan sorgu. Store'a hiç
// gidilmeden reddedilir.
var ErrEmptyQuery = errors.New("serial number sorgusu boş")

// SearchResult: tek aramanın birleşik sonucu. Ürün ve kategori bulunamayabilir,
// bu bir hata değildir.
type SearchResult struct {
	Serial   models.SerialNumber
	Product  *models.Product
	Category *models.Category
}

// Resolver: ham sorguyu normalize eder, serial kaydını bulur ve ürün/kategori
// ile birleştirir. Salt okunur, hiçbir kaydı değiştirmez.
type Resolver struct {
	store store.Store
}

func NewResolver(st store.Store) *Resolver {
	return &Resolver{store: st}
}

// Resolve: eşleşme yoksa store.ErrNotFound döner; altyapı hataları olduğu
// gibi yukarı taşınır ki çağıran "bulunamadı" ile "arama başarısız" ayrımını
// yapabilsin.
func (r *Resolver) Resolve(query string) (*SearchResult, error) {
	q := strings.TrimSpace(query)
	if q == "" {
		return nil, ErrEmptyQuery
	}

	sn, err := r.store.FindSerial(q)
	if err != nil {
		return nil, err
	}

	return r.compose(sn)
}

// ResolveByID: admin detay görünümü. Aynı birleşik sonucu id üzerinden üretir.
func (r *Resolver) ResolveByID(id uint) (*SearchResult, error) {
	sn, err := r.store.GetSerial(id)
	if err != nil {
		return nil, err
	}

	return r.compose(sn)
}

func (r *Resolver) compose(sn *models.SerialNumber) (*SearchResult, error) {
	result := &SearchResult{Serial: *sn}

	product, err := r.store.ProductForSerial(sn)
	if err != nil {
		// Ürün eşleşmemesi normal: sonuç product=null ile döner
		if errors.Is(err, store.ErrNotFound) {
			return result, nil
		}
		return nil, err
	}

	result.Product = product
	result.Category = product.Category
	return result, nil
}
