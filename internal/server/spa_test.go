package server_test

import (
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/meshforge/repeaterd/internal/server"
)

var _ = Describe("Classify", func() {
	// Given an OPTIONS request
	// When it is classified
	// Then it is a pre-flight regardless of path
	It("should classify OPTIONS as pre-flight for any path", func() {
		Expect(server.Classify(http.MethodOptions, "/api/stats")).To(Equal(server.DecisionPreflight))
		Expect(server.Classify(http.MethodOptions, "/random")).To(Equal(server.DecisionPreflight))
		Expect(server.Classify(http.MethodOptions, "/")).To(Equal(server.DecisionPreflight))
	})

	// Given a path inside the reserved API namespace
	// When it is classified
	// Then the dispatcher must leave it to the delegate
	It("should classify the API namespace as not-handled-here", func() {
		Expect(server.Classify(http.MethodGet, "/api")).To(Equal(server.DecisionAPI))
		Expect(server.Classify(http.MethodGet, "/api/stats")).To(Equal(server.DecisionAPI))
		Expect(server.Classify(http.MethodPost, "/api/deeply/nested")).To(Equal(server.DecisionAPI))
	})

	// Given any path outside the API namespace
	// When it is classified
	// Then the SPA entry document is served
	It("should classify everything else as SPA index", func() {
		Expect(server.Classify(http.MethodGet, "/")).To(Equal(server.DecisionIndex))
		Expect(server.Classify(http.MethodGet, "/dashboard")).To(Equal(server.DecisionIndex))
		Expect(server.Classify(http.MethodGet, "/deep/nested/path")).To(Equal(server.DecisionIndex))
		Expect(server.Classify(http.MethodPost, "/settings")).To(Equal(server.DecisionIndex))
	})

	// A path merely sharing the prefix string is not in the namespace.
	It("should not treat /apiary as part of the API namespace", func() {
		Expect(server.Classify(http.MethodGet, "/apiary")).To(Equal(server.DecisionIndex))
	})
})
