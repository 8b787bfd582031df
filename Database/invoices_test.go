package Database

import (
	"testing"
	"time"

	"Workshop/Models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvoiceSnapshotsOrderTotal(t *testing.T) {
	s := newTestStore(t)
	orderID := newOrderFixture(t, s, "Maria Lopez", "555-0101", "ABC-123", "2026-08-01")

	_, err := s.AddService(orderID, "Brake Repair", "", 1, 275.50, "")
	require.NoError(t, err)

	invoiceID, err := s.CreateInvoice(orderID)
	require.NoError(t, err)

	invoice, err := s.GetInvoiceByID(invoiceID)
	require.NoError(t, err)
	require.NotNil(t, invoice)
	assert.InDelta(t, 275.50, invoice.TotalAmount, 1e-9)
	assert.Equal(t, Models.PaymentUnpaid, invoice.Status)
	assert.Equal(t, time.Now().Format("2006-01-02"), invoice.InvoiceDate)

	// Changing the order afterwards must not touch the invoice.
	_, err = s.AddSparePart(orderID, "Brake Pads", "", 2, 40, "")
	require.NoError(t, err)

	invoice, err = s.GetInvoiceByID(invoiceID)
	require.NoError(t, err)
	assert.InDelta(t, 275.50, invoice.TotalAmount, 1e-9)
}

func TestCreateInvoiceMissingOrder(t *testing.T) {
	s := newTestStore(t)

	_, err := s.CreateInvoice(999)
	require.ErrorIs(t, err, Models.ErrWorkOrderNotFound)
}

func TestInvoiceListingAndStatus(t *testing.T) {
	s := newTestStore(t)
	orderID := newOrderFixture(t, s, "Maria Lopez", "555-0101", "ABC-123", "2026-08-01")

	invoiceID, err := s.CreateInvoice(orderID)
	require.NoError(t, err)

	affected, err := s.UpdateInvoiceStatus(invoiceID, Models.PaymentPaid)
	require.NoError(t, err)
	require.EqualValues(t, 1, affected)

	invoices, err := s.GetInvoices()
	require.NoError(t, err)
	require.Len(t, invoices, 1)
	assert.Equal(t, Models.PaymentPaid, invoices[0].Status)
	assert.Equal(t, "Maria Lopez", invoices[0].CustomerName)
	assert.Equal(t, "ABC-123", invoices[0].LicensePlate)

	affected, err = s.UpdateInvoiceStatus(999, Models.PaymentPaid)
	require.NoError(t, err)
	require.Zero(t, affected)
}
