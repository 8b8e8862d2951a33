package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/ikkim/baedal-backend/config"
	"github.com/ikkim/baedal-backend/internal/app/repository"
	"github.com/ikkim/baedal-backend/internal/app/service"
	"github.com/ikkim/baedal-backend/internal/db"
	"github.com/xuri/excelize/v2"
)

func main() {
	// 명령줄 인자 확인
	if len(os.Args) < 2 {
		log.Fatal("Usage: go run cmd/seed/main.go <xlsx_file_path>")
	}

	filePath := os.Args[1]

	// 설정 로드
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	// DB 연결
	if err := db.Initialize(&cfg.Database); err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	purgeRepo := repository.NewPurgeRepository(db.GetDB())
	adminService := service.NewAdminService(db.GetDB(), purgeRepo)

	// XLSX 파일 읽기
	fmt.Printf("Reading XLSX file: %s\n", filePath)
	records, err := readStoresFromXLSX(filePath)
	if err != nil {
		log.Fatal("Failed to read XLSX:", err)
	}

	fmt.Printf("Total stores to import: %d\n", len(records))

	// 사용자 확인
	fmt.Print("Do you want to proceed with the import? (yes/no): ")
	var confirm string
	fmt.Scanln(&confirm)
	if confirm != "yes" && confirm != "y" {
		fmt.Println("Import cancelled.")
		return
	}

	inserted, err := adminService.CreateStores(records)
	if err != nil {
		log.Fatal("Failed to create stores:", err)
	}

	fmt.Println("Import completed successfully!")
	fmt.Printf("Total stores imported: %d (duplicates skipped: %d)\n", inserted, len(records)-inserted)
}

// readStoresFromXLSX는 첫 번째 시트를 읽어 매장 레코드로 변환한다.
// 컬럼 순서: 상호명, 카테고리, 전화번호, 최소주문금액, 운영시간, 휴무일, 소개
func readStoresFromXLSX(filePath string) ([]service.StoreRecord, error) {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open XLSX file: %w", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("no sheets found in XLSX file")
	}

	fmt.Printf("Reading sheet: %s\n", sheetName)

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("no data found in XLSX file")
	}

	var records []service.StoreRecord
	seen := make(map[string]bool) // 파일 내 중복 제거용
	skippedCount := 0

	// 첫 행은 헤더이므로 스킵
	for i, row := range rows {
		if i == 0 {
			fmt.Printf("Headers: %v\n", row)
			continue
		}

		if len(row) < 2 {
			skippedCount++
			continue
		}

		record := service.StoreRecord{
			Name:     strings.TrimSpace(row[0]),
			Category: strings.TrimSpace(row[1]),
		}
		if len(row) > 2 {
			record.Phone = strings.TrimSpace(row[2])
		}
		if len(row) > 3 {
			record.MinPrice = strings.TrimSpace(row[3])
		}
		if len(row) > 4 {
			record.OperationTime = strings.TrimSpace(row[4])
		}
		if len(row) > 5 {
			record.ClosedDay = strings.TrimSpace(row[5])
		}
		if len(row) > 6 {
			record.Information = strings.TrimSpace(row[6])
		}

		// 필수 항목 검사
		if record.Name == "" || record.Category == "" {
			skippedCount++
			continue
		}

		if seen[record.Name] {
			skippedCount++
			continue
		}
		seen[record.Name] = true

		records = append(records, record)

		if len(records)%1000 == 0 {
			fmt.Printf("Processed %d stores...\n", len(records))
		}
	}

	fmt.Printf("\nSummary:\n")
	fmt.Printf("  Total rows: %d\n", len(rows)-1)
	fmt.Printf("  Valid stores: %d\n", len(records))
	fmt.Printf("  Skipped rows: %d\n", skippedCount)

	return records, nil
}
