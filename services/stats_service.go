package services

import (
	"context"
	"fmt"

	"anket.link/configs/configslog"
	"anket.link/repositories"

	"go.uber.org/zap"
)

// FormResponseCount tek bir formun cevap sayısını taşır.
type FormResponseCount struct {
	Name      string `json:"name"`
	Responses int64  `json:"responses"`
}

// DashboardStats bir kullanıcının tüm formları üzerinden hesaplanan özettir.
type DashboardStats struct {
	TotalForms       int64               `json:"totalForms"`
	TotalResponses   int64               `json:"totalResponses"`
	ResponsesPerForm []FormResponseCount `json:"responsesPerForm"`
}

// IStatsService istatistik hesapları için arayüz.
type IStatsService interface {
	GetDashboardStats(ctx context.Context, ownerID uint) (*DashboardStats, error)
}

// StatsService IStatsService arayüzünü uygular.
type StatsService struct {
	formRepo     repositories.IFormRepository
	responseRepo repositories.IResponseRepository
}

// NewStatsService yeni bir StatsService örneği oluşturur.
func NewStatsService() IStatsService {
	return &StatsService{
		formRepo:     repositories.NewFormRepository(),
		responseRepo: repositories.NewResponseRepository(),
	}
}

// GetDashboardStats kullanıcının formlarını ve cevap sayılarını tek okuma
// geçişinde toplar. Liste form getirilme sırasındadır; hiç cevabı olmayan
// formlar 0 ile yer alır. Herhangi bir okuma hatası hesabın tamamını iptal
// eder; kısmi sonuç dönülmez.
func (s *StatsService) GetDashboardStats(ctx context.Context, ownerID uint) (*DashboardStats, error) {
	if ownerID == 0 {
		return nil, fmt.Errorf("%w: geçersiz kullanıcı ID", ErrFormInvalidInput)
	}

	forms, err := s.formRepo.FindAllByUserID(ctx, ownerID)
	if err != nil {
		configslog.Log.Error("İstatistik için formlar okunamadı", zap.Uint("ownerID", ownerID), zap.Error(err))
		return nil, err
	}

	formIDs := make([]uint, len(forms))
	for i, f := range forms {
		formIDs[i] = f.ID
	}

	counts, err := s.responseRepo.CountGroupedByFormIDs(ctx, formIDs)
	if err != nil {
		configslog.Log.Error("İstatistik için cevap sayıları okunamadı", zap.Uint("ownerID", ownerID), zap.Error(err))
		return nil, err
	}

	stats := &DashboardStats{
		TotalForms:       int64(len(forms)),
		ResponsesPerForm: make([]FormResponseCount, 0, len(forms)),
	}
	for _, f := range forms {
		count := counts[f.ID] // Haritada yoksa 0
		stats.TotalResponses += count
		stats.ResponsesPerForm = append(stats.ResponsesPerForm, FormResponseCount{
			Name:      f.Title,
			Responses: count,
		})
	}
	return stats, nil
}

var _ IStatsService = (*StatsService)(nil)
