package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics exposes the invoicing instruments scraped at /metrics.
type Metrics struct {
	invoicesCreated    prometheus.Counter
	invoicesDeleted    prometheus.Counter
	invoiceFinalAmount prometheus.Histogram
	wordsFailures      prometheus.Counter
	invoicesArchived   *prometheus.CounterVec
}

// New creates the invoicing instruments and registers them with registerer.
// A nil registerer means prometheus.DefaultRegisterer.
func New(registerer prometheus.Registerer) *Metrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	invoicesCreated := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "gst_invoices_created_total",
		Help: "Invoices created.",
	})
	invoicesDeleted := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "gst_invoices_deleted_total",
		Help: "Invoices deleted.",
	})
	invoiceFinalAmount := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "gst_invoice_final_amount_rupees",
		Help:    "Final payable amount of created invoices in whole rupees.",
		Buckets: []float64{100, 500, 1000, 5000, 10000, 50000, 100000, 500000, 1000000, 10000000},
	})
	wordsFailures := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "gst_amount_in_words_failures_total",
		Help: "Final amounts that could not be rendered in words.",
	})
	invoicesArchived := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "gst_invoices_archived_total",
		Help: "Invoice PDF uploads to object storage by result.",
	}, []string{"result"})

	registerer.MustRegister(
		invoicesCreated,
		invoicesDeleted,
		invoiceFinalAmount,
		wordsFailures,
		invoicesArchived,
	)

	return &Metrics{
		invoicesCreated:    invoicesCreated,
		invoicesDeleted:    invoicesDeleted,
		invoiceFinalAmount: invoiceFinalAmount,
		wordsFailures:      wordsFailures,
		invoicesArchived:   invoicesArchived,
	}
}

// RecordInvoiceCreated counts a created invoice and observes its final amount.
func (m *Metrics) RecordInvoiceCreated(finalAmount int64) {
	if m == nil {
		return
	}
	m.invoicesCreated.Inc()
	m.invoiceFinalAmount.Observe(float64(finalAmount))
}

// RecordInvoiceDeleted counts a deleted invoice.
func (m *Metrics) RecordInvoiceDeleted() {
	if m == nil {
		return
	}
	m.invoicesDeleted.Inc()
}

// RecordWordsFailure counts an amount that fell back to the conversion error text.
func (m *Metrics) RecordWordsFailure() {
	if m == nil {
		return
	}
	m.wordsFailures.Inc()
}

// RecordArchive counts an archive attempt; err decides the result label.
func (m *Metrics) RecordArchive(err error) {
	if m == nil {
		return
	}
	result := "success"
	if err != nil {
		result = "error"
	}
	m.invoicesArchived.WithLabelValues(result).Inc()
}
