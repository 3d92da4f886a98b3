//go:build integration

package e2e

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"

	"github.com/Leonardostavares/Catalogo-Carro/internal/model"
)

func onixParams() model.CreateCarParams {
	return model.CreateCarParams{
		BrandName: "Chevrolet",
		ModelName: "Onix Plus",
		Year:      2015,
		Fuel:      "FLEX",
		Doors:     4,
		Color:     "BEGE",
		Value:     decimal.NewFromInt(50000),
	}
}

func countRows(table string) int {
	var n int
	Expect(pool.QueryRow(ctx, "SELECT count(*) FROM "+table).Scan(&n)).To(Succeed())
	return n
}

var _ = Describe("Car registration", func() {
	It("creates brand, model and car for new names", func() {
		car, err := cars.Create(ctx, onixParams())
		Expect(err).NotTo(HaveOccurred())

		Expect(car.ID).To(Equal(int64(1000)))
		Expect(car.BrandName).To(Equal("Chevrolet"))
		Expect(car.ModelName).To(Equal("Onix Plus"))
		Expect(car.Value.Equal(decimal.NewFromInt(50000))).To(BeTrue())
		Expect(car.RegisteredAt).To(BeNumerically("~", time.Now().Unix(), 5))

		Expect(countRows("brands")).To(Equal(1))
		Expect(countRows("car_models")).To(Equal(1))
		Expect(countRows("cars")).To(Equal(1))

		By("publishing events after commit")
		Eventually(func() bool {
			return events.Has(model.EventCarCreated, car.ID)
		}).WithTimeout(15 * time.Second).WithPolling(200 * time.Millisecond).Should(BeTrue())
	})

	It("reuses brand and model on a second car", func() {
		first, err := cars.Create(ctx, onixParams())
		Expect(err).NotTo(HaveOccurred())

		params := onixParams()
		params.Color = "PRETO"
		second, err := cars.Create(ctx, params)
		Expect(err).NotTo(HaveOccurred())

		Expect(second.ID).To(Equal(first.ID + 1))
		Expect(second.ModelID).To(Equal(first.ModelID))
		Expect(second.BrandID).To(Equal(first.BrandID))
		Expect(countRows("brands")).To(Equal(1))
		Expect(countRows("car_models")).To(Equal(1))
	})

	It("resolves a brand idempotently", func() {
		b1, o1, err := cars.ResolveBrand(ctx, "Fiat")
		Expect(err).NotTo(HaveOccurred())
		Expect(o1).To(Equal(model.OutcomeCreated))

		b2, o2, err := cars.ResolveBrand(ctx, "Fiat")
		Expect(err).NotTo(HaveOccurred())
		Expect(o2).To(Equal(model.OutcomeReused))
		Expect(b2.ID).To(Equal(b1.ID))

		m1, o3, err := cars.ResolveModel(ctx, b1, "Argo")
		Expect(err).NotTo(HaveOccurred())
		Expect(o3.Created()).To(BeTrue())
		Expect(m1.ReferencePrice).To(BeNil())

		m2, o4, err := cars.ResolveModel(ctx, b1, "Argo")
		Expect(err).NotTo(HaveOccurred())
		Expect(o4.Created()).To(BeFalse())
		Expect(m2.ID).To(Equal(m1.ID))
	})

	It("rejects year 1899 before persistence", func() {
		params := onixParams()
		params.Year = 1899

		_, err := cars.Create(ctx, params)
		Expect(err).To(MatchError(model.ErrValidation))
		Expect(countRows("brands")).To(BeZero())
		Expect(countRows("cars")).To(BeZero())
	})

	It("re-resolves the model on update and keeps the old rows", func() {
		car, err := cars.Create(ctx, onixParams())
		Expect(err).NotTo(HaveOccurred())

		updated, err := cars.Update(ctx, car.ID, model.UpdateCarParams{
			ModelName: "Tracker",
			Year:      2020,
			Fuel:      "GASOLINA",
			Doors:     4,
			Color:     "AZUL",
			Value:     decimal.RequireFromString("120000.50"),
		})
		Expect(err).NotTo(HaveOccurred())

		Expect(updated.ModelName).To(Equal("Tracker"))
		Expect(updated.BrandName).To(Equal("Chevrolet"))
		Expect(updated.RegisteredAt).To(Equal(car.RegisteredAt))
		Expect(countRows("car_models")).To(Equal(2))
		Expect(countRows("brands")).To(Equal(1))
	})
})

var _ = Describe("Catalog queries", func() {
	It("filters cars by inclusive price range", func() {
		for _, v := range []string{"30000", "50000", "70000"} {
			params := onixParams()
			params.Value = decimal.RequireFromString(v)
			_, err := cars.Create(ctx, params)
			Expect(err).NotTo(HaveOccurred())
		}

		minValue, maxValue := decimal.NewFromInt(30000), decimal.NewFromInt(50000)
		got, err := cars.List(ctx, model.CarsFilter{MinValue: &minValue, MaxValue: &maxValue})
		Expect(err).NotTo(HaveOccurred())
		Expect(got).To(HaveLen(2))
	})

	It("finds models by case-insensitive fragment", func() {
		_, err := cars.Create(ctx, onixParams())
		Expect(err).NotTo(HaveOccurred())

		got, err := models.SearchByName(ctx, "onix")
		Expect(err).NotTo(HaveOccurred())
		Expect(got).To(HaveLen(1))
		Expect(got[0].BrandName).To(Equal("Chevrolet"))
	})

	It("serves the export document", func() {
		car, err := cars.Create(ctx, onixParams())
		Expect(err).NotTo(HaveOccurred())

		resp, err := http.Get(server.URL + "/cars.json")
		Expect(err).NotTo(HaveOccurred())
		defer resp.Body.Close()
		Expect(resp.StatusCode).To(Equal(http.StatusOK))

		body, err := io.ReadAll(resp.Body)
		Expect(err).NotTo(HaveOccurred())

		var doc map[string][]map[string]any
		Expect(json.Unmarshal(body, &doc)).To(Succeed())
		Expect(doc["cars"]).To(HaveLen(1))

		got := doc["cars"][0]
		Expect(got["id"]).To(BeNumerically("==", car.ID))
		Expect(got["modelo_id"]).To(BeNumerically("==", car.ModelID))
		Expect(got["nome_modelo"]).To(Equal("ONIX PLUS"))
		Expect(got["marca"]).To(Equal("Chevrolet"))
		Expect(got["ano"]).To(BeNumerically("==", 2015))
		Expect(got["num_portas"]).To(BeNumerically("==", 4))
		Expect(got["cor"]).To(Equal("BEGE"))
		Expect(got["valor"]).To(BeNumerically("==", 50000))
	})
})

var _ = Describe("Deletes", func() {
	It("returns NotFound for missing ids of every kind", func() {
		Expect(brands.Delete(ctx, 999)).To(MatchError(model.ErrNotFound))
		Expect(models.Delete(ctx, 999)).To(MatchError(model.ErrNotFound))
		Expect(cars.Delete(ctx, 999)).To(MatchError(model.ErrNotFound))
	})

	It("refuses to delete a brand or model that still has dependents", func() {
		car, err := cars.Create(ctx, onixParams())
		Expect(err).NotTo(HaveOccurred())

		Expect(brands.Delete(ctx, car.BrandID)).To(MatchError(model.ErrHasDependents))
		Expect(models.Delete(ctx, car.ModelID)).To(MatchError(model.ErrHasDependents))

		Expect(cars.Delete(ctx, car.ID)).To(Succeed())
		Expect(models.Delete(ctx, car.ModelID)).To(Succeed())
		Expect(brands.Delete(ctx, car.BrandID)).To(Succeed())
	})
})
