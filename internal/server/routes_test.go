package server_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/meshforge/repeaterd/internal/server"
)

var _ = Describe("PlanRoutes", func() {
	var webRoot string

	BeforeEach(func() {
		webRoot = GinkgoT().TempDir()
	})

	// Given a web root with only an assets directory
	// When the routes are planned
	// Then /assets is mounted and /_next is not
	It("should mount /assets only when the directory exists", func() {
		Expect(os.Mkdir(filepath.Join(webRoot, "assets"), 0o755)).To(Succeed())

		plan := server.PlanRoutes(webRoot)
		Expect(plan.HasStaticDir("/assets")).To(BeTrue())
		Expect(plan.HasStaticDir("/_next")).To(BeFalse())
	})

	// Given a web root with only a _next directory
	// When the routes are planned
	// Then /_next is mounted and /assets is not
	It("should mount /_next only when the directory exists", func() {
		Expect(os.Mkdir(filepath.Join(webRoot, "_next"), 0o755)).To(Succeed())

		plan := server.PlanRoutes(webRoot)
		Expect(plan.HasStaticDir("/_next")).To(BeTrue())
		Expect(plan.HasStaticDir("/assets")).To(BeFalse())
	})

	// Given a bare web root
	// When the routes are planned
	// Then only the root and favicon mappings exist
	It("should plan only index and favicon for a bare web root", func() {
		plan := server.PlanRoutes(webRoot)
		Expect(plan.StaticDirs).To(BeEmpty())
		Expect(plan.Index).To(Equal(filepath.Join(webRoot, "index.html")))
		Expect(plan.Favicon).To(Equal(filepath.Join(webRoot, "favicon.ico")))
	})

	It("should mount both directories when both exist", func() {
		Expect(os.Mkdir(filepath.Join(webRoot, "assets"), 0o755)).To(Succeed())
		Expect(os.Mkdir(filepath.Join(webRoot, "_next"), 0o755)).To(Succeed())

		plan := server.PlanRoutes(webRoot)
		Expect(plan.StaticDirs).To(HaveLen(2))
	})

	// Given a file named assets instead of a directory
	// When the routes are planned
	// Then no static mapping is created for it
	It("should ignore a plain file shadowing an asset directory name", func() {
		Expect(os.WriteFile(filepath.Join(webRoot, "assets"), []byte("x"), 0o644)).To(Succeed())

		plan := server.PlanRoutes(webRoot)
		Expect(plan.HasStaticDir("/assets")).To(BeFalse())
	})
})
