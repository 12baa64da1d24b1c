package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/tripmoa/trip-backend/config"
	"github.com/tripmoa/trip-backend/pkg/helpers"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	// Demo member
	userID := "demoTraveler"
	nickname := "demo"
	password := "password123"
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var memberID int64
	err = db.QueryRow(`
		INSERT INTO members (user_id, nickname, password_hash, image_url)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id) DO UPDATE SET updated_at = now()
		RETURNING id
	`, userID, nickname, hash, "").Scan(&memberID)
	if err != nil {
		log.Fatalf("failed to seed member: %v", err)
	}
	fmt.Printf("seeded member: id=%d user_id=%s nickname=%s password=%s\n", memberID, userID, nickname, password)

	// Base categories
	for _, name := range []string{"맛집", "숙소", "관광지", "카페", "액티비티"} {
		if _, err := db.Exec(`
			INSERT INTO categories (name) VALUES ($1)
			ON CONFLICT (name) DO NOTHING
		`, name); err != nil {
			log.Fatalf("failed to upsert category %q: %v", name, err)
		}
	}
	fmt.Println("base categories ensured")

	// A couple of well known locations so post creation works out of the box
	locations := []struct {
		name    string
		address string
		lat     float64
		lng     float64
	}{
		{"경복궁", "서울 종로구 사직로 161", 37.579617, 126.977041},
		{"해운대해수욕장", "부산 해운대구 우동", 35.158698, 129.160384},
		{"성산일출봉", "제주 서귀포시 성산읍", 33.458031, 126.942520},
	}
	for _, l := range locations {
		var exists bool
		if err := db.QueryRow(`SELECT EXISTS (SELECT 1 FROM locations WHERE name = $1)`, l.name).Scan(&exists); err != nil {
			log.Fatalf("failed to check location %q: %v", l.name, err)
		}
		if exists {
			continue
		}
		if _, err := db.Exec(`
			INSERT INTO locations (name, address, lat, lng)
			VALUES ($1, $2, $3, $4)
		`, l.name, l.address, l.lat, l.lng); err != nil {
			log.Fatalf("failed to seed location %q: %v", l.name, err)
		}
	}
	fmt.Println("sample locations ensured")
}
