// cmd/seed_products/main.go
//
// One-shot seeding of the cosmetics catalog into Firestore. Run locally:
//
//	FIRESTORE_PROJECT_ID=... go run ./cmd/seed_products
package main

import (
	"context"
	"log"
	"strings"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/option"

	fs "naturalglow/internal/adapters/out/firestore"
	proddom "naturalglow/internal/domain/product"
	appcfg "naturalglow/internal/infra/config"
)

func main() {
	ctx := context.Background()

	cfg := appcfg.Load()
	projectID := strings.TrimSpace(cfg.FirestoreProjectID)
	if projectID == "" {
		log.Fatal("[seed] FIRESTORE_PROJECT_ID is empty")
	}

	var opts []option.ClientOption
	if cred := strings.TrimSpace(cfg.FirestoreCredentialsFile); cred != "" {
		opts = append(opts, option.WithCredentialsFile(cred))
	}

	client, err := firestore.NewClient(ctx, projectID, opts...)
	if err != nil {
		log.Fatalf("[seed] firestore client: %v", err)
	}
	defer client.Close()

	repo := fs.NewProductRepositoryFS(client)

	for _, p := range catalog() {
		if err := repo.Save(ctx, p); err != nil {
			log.Fatalf("[seed] save %s: %v", p.ID, err)
		}
		log.Printf("[seed] saved %s (%s)", p.ID, p.Name)
	}
	log.Printf("[seed] done (%d products)", len(catalog()))
}

// catalog returns the launch line-up. Prices and copy match the shop's
// product cards.
func catalog() []proddom.Product {
	return []proddom.Product{
		{ID: "1", Name: "Crema Hidratante", Description: "Hidratación profunda con aloe vera y aceite de coco.", Price: 39.99, Image: "/img/cosmetic1.jpg", Category: "Cuidado Facial"},
		{ID: "2", Name: "Jabón Natural", Description: "Limpieza suave con aceites esenciales y manteca de karité.", Price: 15.99, Image: "/img/cosmetic2.jpg", Category: "Cuidado Corporal"},
		{ID: "3", Name: "Serum Facial", Description: "Revitaliza tu piel con vitamina C y ácido hialurónico.", Price: 45.99, Image: "/img/cosmetic3.jpg", Category: "Cuidado Facial"},
		{ID: "4", Name: "Serum de péptidos", Description: "Nutrición intensiva con aceite de argán y rosa mosqueta.", Price: 29.99, Image: "/img/cosmetic4.jpg", Category: "Cuidado Facial"},
		{ID: "5", Name: "Mascarilla Facial", Description: "Purifica y rejuvenece con arcilla verde y té matcha.", Price: 22.99, Image: "/img/cosmetic5.jpg", Category: "Cuidado Facial"},
		{ID: "6", Name: "Aceites esenciales", Description: "Elimina células muertas con azúcar de caña y aceite de almendras.", Price: 99.99, Image: "/img/cosmetic6.jpg", Category: "Cuidado Corporal"},
	}
}
