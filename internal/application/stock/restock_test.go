package stock_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/farmaciapetshoppf/Veterinaria-Petshop-Back-sub000/internal/application/stock"
	"github.com/farmaciapetshoppf/Veterinaria-Petshop-Back-sub000/internal/domain"
	"github.com/farmaciapetshoppf/Veterinaria-Petshop-Back-sub000/internal/domain/entity"
)

const testAdminID = "00000000-0000-0000-0000-0000000000ad"

func newRestockFixture() (*memStore, *stock.RestockUseCase) {
	s := newMemStore()
	uc := stock.NewRestockUseCase(&fakeTxRunner{s: s}, &medRepoFake{s: s}, &restockRepoFake{s: s})
	return s, uc
}

// ──────────────────────────────────────────────────────────────────────────────
// Creación de la solicitud
// ──────────────────────────────────────────────────────────────────────────────

func TestRestock_Request_CreaPendiente(t *testing.T) {
	s, uc := newRestockFixture()
	medID := seedMedication(s, "Amoxicilina", 5, 10, false)

	req, err := uc.Request(context.Background(), medID, 100, testVetID)
	require.NoError(t, err)
	assert.Equal(t, entity.RestockStatusPending, req.Status)
	assert.Equal(t, int64(100), req.Quantity)
	assert.Equal(t, testVetID, req.RequesterID)
	assert.Nil(t, req.ApproverID)

	assert.Equal(t, int64(5), s.meds[medID].Stock, "crear la solicitud no cambia el stock")
}

func TestRestock_Request_MedicamentoInexistente(t *testing.T) {
	_, uc := newRestockFixture()

	_, err := uc.Request(context.Background(), uuid.New().String(), 100, testVetID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRestock_Request_CantidadInvalida(t *testing.T) {
	s, uc := newRestockFixture()
	medID := seedMedication(s, "Amoxicilina", 5, 10, false)

	_, err := uc.Request(context.Background(), medID, 0, testVetID)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Request(context.Background(), medID, -10, testVetID)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Transiciones de estado
// ──────────────────────────────────────────────────────────────────────────────

func TestRestock_Approve_DesdePendiente(t *testing.T) {
	s, uc := newRestockFixture()
	medID := seedMedication(s, "Amoxicilina", 5, 10, false)
	req, err := uc.Request(context.Background(), medID, 100, testVetID)
	require.NoError(t, err)

	approved, err := uc.Approve(context.Background(), req.ID, testAdminID)
	require.NoError(t, err)
	assert.Equal(t, entity.RestockStatusApproved, approved.Status)
	require.NotNil(t, approved.ApproverID)
	assert.Equal(t, testAdminID, *approved.ApproverID)
	assert.NotNil(t, approved.ApprovedAt)

	assert.Equal(t, int64(5), s.meds[medID].Stock, "aprobar todavía no repone stock")
}

func TestRestock_Approve_DosVeces_Falla(t *testing.T) {
	s, uc := newRestockFixture()
	medID := seedMedication(s, "Amoxicilina", 5, 10, false)
	req, err := uc.Request(context.Background(), medID, 100, testVetID)
	require.NoError(t, err)

	_, err = uc.Approve(context.Background(), req.ID, testAdminID)
	require.NoError(t, err)

	_, err = uc.Approve(context.Background(), req.ID, testAdminID)
	assert.ErrorIs(t, err, domain.ErrInvalidState,
		"approved no es un estado desde el que se pueda aprobar de nuevo")
}

func TestRestock_Reject_EsTerminal(t *testing.T) {
	s, uc := newRestockFixture()
	medID := seedMedication(s, "Amoxicilina", 5, 10, false)
	req, err := uc.Request(context.Background(), medID, 100, testVetID)
	require.NoError(t, err)

	rejected, err := uc.Reject(context.Background(), req.ID, testAdminID)
	require.NoError(t, err)
	assert.Equal(t, entity.RestockStatusRejected, rejected.Status)
	assert.True(t, rejected.IsTerminal())

	_, err = uc.Approve(context.Background(), req.ID, testAdminID)
	assert.ErrorIs(t, err, domain.ErrInvalidState)

	_, err = uc.Complete(context.Background(), req.ID, testAdminID)
	assert.ErrorIs(t, err, domain.ErrInvalidState)
	assert.Equal(t, int64(5), s.meds[medID].Stock, "una solicitud rechazada nunca toca stock")
}

// ──────────────────────────────────────────────────────────────────────────────
// Completar: la única vía de entrada de stock por reposición
// ──────────────────────────────────────────────────────────────────────────────

func TestRestock_Complete_IncrementaYAudita(t *testing.T) {
	s, uc := newRestockFixture()
	medID := seedMedication(s, "Amoxicilina", 5, 10, false)
	req, err := uc.Request(context.Background(), medID, 100, testVetID)
	require.NoError(t, err)
	_, err = uc.Approve(context.Background(), req.ID, testAdminID)
	require.NoError(t, err)

	completed, err := uc.Complete(context.Background(), req.ID, testAdminID)
	require.NoError(t, err)
	assert.Equal(t, entity.RestockStatusCompleted, completed.Status)
	assert.NotNil(t, completed.CompletedAt)
	assert.True(t, completed.IsTerminal())

	assert.Equal(t, int64(105), s.meds[medID].Stock, "el stock sube exactamente en la cantidad solicitada")

	require.Len(t, s.logs, 1, "completar deja una entrada RESTOCK en el libro")
	entry := s.logs[0]
	assert.Equal(t, entity.StockActionRestock, entry.Action)
	assert.Equal(t, int64(100), entry.Delta)
	assert.Equal(t, int64(5), entry.Before)
	assert.Equal(t, int64(105), entry.After)
	assert.Equal(t, testAdminID, entry.ActorID)
}

func TestRestock_Complete_SinAprobar_Falla(t *testing.T) {
	s, uc := newRestockFixture()
	medID := seedMedication(s, "Amoxicilina", 5, 10, false)
	req, err := uc.Request(context.Background(), medID, 100, testVetID)
	require.NoError(t, err)

	_, err = uc.Complete(context.Background(), req.ID, testAdminID)
	assert.ErrorIs(t, err, domain.ErrInvalidState)
	assert.Equal(t, int64(5), s.meds[medID].Stock)
	assert.Empty(t, s.logs)
}

func TestRestock_Complete_DosVeces_NoDuplicaStock(t *testing.T) {
	s, uc := newRestockFixture()
	medID := seedMedication(s, "Amoxicilina", 5, 10, false)
	req, err := uc.Request(context.Background(), medID, 100, testVetID)
	require.NoError(t, err)
	_, err = uc.Approve(context.Background(), req.ID, testAdminID)
	require.NoError(t, err)
	_, err = uc.Complete(context.Background(), req.ID, testAdminID)
	require.NoError(t, err)

	_, err = uc.Complete(context.Background(), req.ID, testAdminID)
	assert.ErrorIs(t, err, domain.ErrInvalidState)
	assert.Equal(t, int64(105), s.meds[medID].Stock, "completar dos veces no debe duplicar la reposición")
	assert.Len(t, s.logs, 1)
}

// ──────────────────────────────────────────────────────────────────────────────
// Borrado y listados
// ──────────────────────────────────────────────────────────────────────────────

func TestRestock_Delete_CualquierEstado(t *testing.T) {
	s, uc := newRestockFixture()
	medID := seedMedication(s, "Amoxicilina", 5, 10, false)
	req, err := uc.Request(context.Background(), medID, 100, testVetID)
	require.NoError(t, err)

	deleted, err := uc.Delete(context.Background(), req.ID)
	require.NoError(t, err)
	assert.Equal(t, req.ID, deleted.ID)
	assert.Equal(t, entity.RestockStatusPending, deleted.Status,
		"se devuelve la solicitud tal como estaba antes del borrado")

	_, err = uc.Delete(context.Background(), req.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound, "la solicitud ya no existe")
}

func TestRestock_ListByStatus(t *testing.T) {
	s, uc := newRestockFixture()
	medID := seedMedication(s, "Amoxicilina", 5, 10, false)

	r1, err := uc.Request(context.Background(), medID, 10, testVetID)
	require.NoError(t, err)
	r2, err := uc.Request(context.Background(), medID, 20, testVetID)
	require.NoError(t, err)
	_, err = uc.Approve(context.Background(), r2.ID, testAdminID)
	require.NoError(t, err)

	pending, err := uc.ListByStatus(context.Background(), entity.RestockStatusPending, 50, 0)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, r1.ID, pending[0].ID)

	approved, err := uc.ListByStatus(context.Background(), entity.RestockStatusApproved, 50, 0)
	require.NoError(t, err)
	require.Len(t, approved, 1)
	assert.Equal(t, r2.ID, approved[0].ID)

	_, err = uc.ListByStatus(context.Background(), "cancelado", 50, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "un estado desconocido se rechaza")
}
