package models

import (
	"log"

	"bitbucket.org/nileloom/bagops_backend/config"
)

func MigrateTable() {
	db := config.GetDB()

	err := db.AutoMigrate(
		&ProductSize{}, &FabricType{}, &PrintPattern{}, &ProductSKU{},
		&InventoryLocation{}, &InventoryBalance{}, &InventoryMovement{},
		&FabricMaterial{}, &FabricInventory{}, &FabricPrintJob{},
		&Customer{}, &OrderStatus{}, &Order{}, &OrderItem{}, &OrderStatusHistory{},
		&ExpenseType{}, &Expense{},
	)
	if err != nil {
		log.Fatal(err)
	}
}
