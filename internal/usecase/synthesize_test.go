package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/growthdesk/crm-backend/internal/entity"
)

func TestSynthesizeLeadDerivesNameAndStatus(t *testing.T) {
	payments := []entity.Payment{
		{
			OrderID:     "order_001",
			Email:       "jane.doe@x.com",
			Phone:       "919876543210",
			AmountPaise: 49900,
			Product:     "ebook_growth",
			Status:      "SUCCESS",
		},
	}

	leads := SynthesizeLeads(payments)

	assert.Len(t, leads, 1)
	assert.Equal(t, "order_001", leads[0].ID)
	assert.Equal(t, "Jane Doe", leads[0].Name)
	assert.Equal(t, "ebook_growth", leads[0].Company)
	assert.Equal(t, entity.LeadStatusNew, leads[0].Status)
	assert.Equal(t, int64(49900), leads[0].ValuePaise)
}

func TestSynthesizeLeadNonSuccessIsContacted(t *testing.T) {
	leads := SynthesizeLeads([]entity.Payment{
		{OrderID: "o1", Email: "a@x.com", Status: "FAILED"},
		{OrderID: "o2", Email: "b@x.com", Status: "PENDING"},
		{OrderID: "o3", Email: "c@x.com", Status: "SUCCESS"},
	})

	assert.Equal(t, entity.LeadStatusContacted, leads[0].Status)
	assert.Equal(t, entity.LeadStatusContacted, leads[1].Status)
	assert.Equal(t, entity.LeadStatusNew, leads[2].Status)
}

func TestSynthesizeLeadNameWithoutDots(t *testing.T) {
	leads := SynthesizeLeads([]entity.Payment{
		{OrderID: "o1", Email: "priya@x.com", Status: "SUCCESS"},
		{OrderID: "o2", Email: "", Status: "SUCCESS"},
	})

	assert.Equal(t, "Priya", leads[0].Name)
	assert.Equal(t, "", leads[1].Name)
}

func TestSynthesizeLeadsIsDeterministic(t *testing.T) {
	payments := []entity.Payment{
		{OrderID: "o3", Email: "c.d@x.com", Status: "SUCCESS", AmountPaise: 100},
		{OrderID: "o1", Email: "a.b@x.com", Status: "FAILED", AmountPaise: 200},
		{OrderID: "o2", Email: "e.f@x.com", Status: "SUCCESS", AmountPaise: 300},
	}

	first := SynthesizeLeads(payments)
	second := SynthesizeLeads(payments)

	// Same inputs, same output, input order preserved. No sort.
	assert.Equal(t, first, second)
	assert.Equal(t, "o3", first[0].ID)
	assert.Equal(t, "o1", first[1].ID)
	assert.Equal(t, "o2", first[2].ID)
}
