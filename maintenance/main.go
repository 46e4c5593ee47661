package main

import (
	"fmt"
	"log"

	"inventory-app/config"
	"inventory-app/database"
	"inventory-app/services"
)

// One-off cleanup: purges the known junk/test skus from inventory, logs and
// the catalog, then mails a summary when SMTP is configured.
func main() {
	config.LoadConfig()

	db, err := database.Open()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	result, err := database.PurgeJunkSkus(db, database.JunkSkus)
	if err != nil {
		log.Fatalf("Failed to purge junk SKUs: %v", err)
	}

	fmt.Printf("Removed junk SKUs: %d inventory, %d log, %d catalog rows\n",
		result.Inventory, result.Logs, result.Catalog)

	body := fmt.Sprintf(`
		<html>
			<body>
				<h3>Junk SKU cleanup finished</h3>
				<p>Inventory rows removed: <strong>%d</strong></p>
				<p>Log rows removed: <strong>%d</strong></p>
				<p>Catalog rows removed: <strong>%d</strong></p>
				<p>This is an auto-generated email. Please do not reply.</p>
			</body>
		</html>
	`, result.Inventory, result.Logs, result.Catalog)

	if err := services.SendMail(config.AlertEmails, "Junk SKU cleanup", body); err != nil {
		log.Println("Summary mail not sent:", err)
	}
}
