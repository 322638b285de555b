package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"cmms-backend/internal/config"
	"cmms-backend/internal/database"
	"cmms-backend/internal/database/models"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

// Simple structures that directly match the YAML data file

type VendorData struct {
	Name string `yaml:"name"`
}

type CategoryData struct {
	Name string `yaml:"name"`
}

type AssetData struct {
	AssetName    string `yaml:"asset_name"`
	Location     string `yaml:"location"`
	Criticality  string `yaml:"criticality"`
	Manufacturer string `yaml:"manufacturer"`
	Model        string `yaml:"model"`
	AssetType    string `yaml:"asset_type"`
	Status       string `yaml:"status"`
	VendorName   string `yaml:"vendor_name,omitempty"`
}

type PartData struct {
	Name           string   `yaml:"name"`
	UnitsInStock   *int     `yaml:"units_in_stock,omitempty"`
	MinimumInStock *int     `yaml:"minimum_in_stock,omitempty"`
	UnitCost       *float64 `yaml:"unit_cost,omitempty"`
	PartType       string   `yaml:"part_type"`
	Location       string   `yaml:"location"`
	VendorName     string   `yaml:"vendor_name,omitempty"`
}

type TeamData struct {
	TeamName    string   `yaml:"team_name"`
	Description string   `yaml:"description"`
	UserNames   []string `yaml:"user_names,omitempty"`
}

type UserData struct {
	UserName string `yaml:"user_name"`
	Password string `yaml:"password"`
	Role     string `yaml:"role"`
}

type FieldData struct {
	Label     string `yaml:"label"`
	FieldType string `yaml:"field_type"`
	Order     int    `yaml:"order"`
	Required  int    `yaml:"required"`
	HelpText  string `yaml:"help_text,omitempty"`
	Config    string `yaml:"config,omitempty"`
}

type SectionData struct {
	Title       string      `yaml:"title"`
	Description string      `yaml:"description"`
	Order       int         `yaml:"order"`
	Fields      []FieldData `yaml:"fields"`
}

type ProcedureData struct {
	Name        string        `yaml:"name"`
	Description string        `yaml:"description"`
	AssetName   string        `yaml:"asset_name"`
	Sections    []SectionData `yaml:"sections"`
}

type WorkOrderData struct {
	Name          string   `yaml:"name"`
	Description   string   `yaml:"description"`
	Priority      string   `yaml:"priority"`
	Status        string   `yaml:"status"`
	WorkType      string   `yaml:"work_type"`
	DueDate       string   `yaml:"due_date,omitempty"`
	TeamName      string   `yaml:"team_name,omitempty"`
	AssetName     string   `yaml:"asset_name,omitempty"`
	VendorName    string   `yaml:"vendor_name,omitempty"`
	ProcedureName string   `yaml:"procedure_name,omitempty"`
	Categories    []string `yaml:"categories,omitempty"`
	Parts         []string `yaml:"parts,omitempty"`
}

type InitialData struct {
	Vendors    []VendorData    `yaml:"vendors"`
	Categories []CategoryData  `yaml:"categories"`
	Assets     []AssetData     `yaml:"assets"`
	Parts      []PartData      `yaml:"parts"`
	Users      []UserData      `yaml:"users"`
	Teams      []TeamData      `yaml:"teams"`
	Procedures []ProcedureData `yaml:"procedures"`
	WorkOrders []WorkOrderData `yaml:"work_orders"`
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	db, err := database.Initialize(cfg.DatabaseURL, &database.Options{Driver: cfg.DatabaseDriver})
	if err != nil {
		log.Fatal("Failed to initialize database:", err)
	}

	dataPath := "data/initial_data.yaml"
	if len(os.Args) > 1 {
		dataPath = os.Args[1]
	}

	raw, err := os.ReadFile(dataPath)
	if err != nil {
		log.Fatalf("Failed to read %s: %v", dataPath, err)
	}

	var data InitialData
	if err := yaml.Unmarshal(raw, &data); err != nil {
		log.Fatal("Failed to parse data file:", err)
	}

	if err := loadAll(db, &data); err != nil {
		log.Fatal("Failed to load initial data:", err)
	}

	log.Println("Initial data loaded successfully")
}

func loadAll(db *gorm.DB, data *InitialData) error {
	vendors := make(map[string]uint)
	for _, v := range data.Vendors {
		vendor := models.Vendor{Name: v.Name}
		if err := firstOrCreate(db, &vendor, "name = ?", v.Name); err != nil {
			return fmt.Errorf("vendor %q: %w", v.Name, err)
		}
		vendors[v.Name] = vendor.ID
	}

	for _, c := range data.Categories {
		category := models.Category{Name: c.Name}
		if err := firstOrCreate(db, &category, "name = ?", c.Name); err != nil {
			return fmt.Errorf("category %q: %w", c.Name, err)
		}
	}

	assets := make(map[string]uint)
	for _, a := range data.Assets {
		status := a.Status
		if status == "" {
			status = models.AssetStatusRunning
		}
		asset := models.Asset{
			AssetName:    a.AssetName,
			Location:     a.Location,
			Criticality:  a.Criticality,
			Manufacturer: a.Manufacturer,
			Model:        a.Model,
			AssetType:    a.AssetType,
			Status:       status,
			VendorID:     lookup(vendors, a.VendorName),
		}
		if err := firstOrCreate(db, &asset, "asset_name = ?", a.AssetName); err != nil {
			return fmt.Errorf("asset %q: %w", a.AssetName, err)
		}
		assets[a.AssetName] = asset.ID
	}

	parts := make(map[string]uint)
	for _, p := range data.Parts {
		part := models.Part{
			Name:           p.Name,
			UnitsInStock:   p.UnitsInStock,
			MinimumInStock: p.MinimumInStock,
			UnitCost:       p.UnitCost,
			PartType:       p.PartType,
			Location:       p.Location,
			VendorID:       lookup(vendors, p.VendorName),
		}
		if err := firstOrCreate(db, &part, "name = ?", p.Name); err != nil {
			return fmt.Errorf("part %q: %w", p.Name, err)
		}
		parts[p.Name] = part.ID
	}

	users := make(map[string]uint)
	for _, u := range data.Users {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("user %q: %w", u.UserName, err)
		}
		user := models.User{
			UserName: u.UserName,
			Password: string(hash),
			Role:     u.Role,
		}
		if err := firstOrCreate(db, &user, "user_name = ?", u.UserName); err != nil {
			return fmt.Errorf("user %q: %w", u.UserName, err)
		}
		users[u.UserName] = user.ID
	}

	for _, t := range data.Teams {
		team := models.Team{
			TeamName:    t.TeamName,
			Description: t.Description,
		}
		if err := firstOrCreate(db, &team, "team_name = ?", t.TeamName); err != nil {
			return fmt.Errorf("team %q: %w", t.TeamName, err)
		}
		for _, userName := range t.UserNames {
			userID, ok := users[userName]
			if !ok {
				return fmt.Errorf("team %q references unknown user %q", t.TeamName, userName)
			}
			teamUser := models.TeamUser{TeamID: team.ID, UserID: userID}
			if err := firstOrCreate(db, &teamUser, "team_id = ? AND user_id = ?", team.ID, userID); err != nil {
				return fmt.Errorf("team %q user %q: %w", t.TeamName, userName, err)
			}
		}
	}

	procedures := make(map[string]uint)
	for _, p := range data.Procedures {
		assetID, ok := assets[p.AssetName]
		if !ok {
			return fmt.Errorf("procedure %q references unknown asset %q", p.Name, p.AssetName)
		}

		var existing models.Procedure
		err := db.Where("name = ? AND asset_id = ?", p.Name, assetID).First(&existing).Error
		if err == nil {
			procedures[p.Name] = existing.ID
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return fmt.Errorf("procedure %q: %w", p.Name, err)
		}

		procedure := models.Procedure{
			Name:        p.Name,
			Description: p.Description,
			AssetID:     assetID,
			Sections:    buildSections(p.Sections),
		}
		if err := db.Create(&procedure).Error; err != nil {
			return fmt.Errorf("procedure %q: %w", p.Name, err)
		}
		procedures[p.Name] = procedure.ID
	}

	teams := make(map[string]uint)
	var allTeams []models.Team
	if err := db.Find(&allTeams).Error; err != nil {
		return err
	}
	for _, team := range allTeams {
		teams[team.TeamName] = team.ID
	}

	for _, w := range data.WorkOrders {
		var count int64
		if err := db.Model(&models.WorkOrder{}).Where("name = ?", w.Name).Count(&count).Error; err != nil {
			return fmt.Errorf("work order %q: %w", w.Name, err)
		}
		if count > 0 {
			continue
		}

		status := w.Status
		if status == "" {
			status = models.WorkOrderStatusOpen
		}
		workOrder := models.WorkOrder{
			Name:        w.Name,
			Description: w.Description,
			Priority:    w.Priority,
			Status:      status,
			WorkType:    w.WorkType,
			TeamID:      lookup(teams, w.TeamName),
			AssetID:     lookup(assets, w.AssetName),
			VendorID:    lookup(vendors, w.VendorName),
			ProcedureID: lookup(procedures, w.ProcedureName),
		}
		if w.DueDate != "" {
			due, err := time.Parse("2006-01-02", w.DueDate)
			if err != nil {
				return fmt.Errorf("work order %q: bad due_date %q", w.Name, w.DueDate)
			}
			workOrder.DueDate = &due
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Omit("Categories", "Parts", "WorkOrderParts", "Team", "Asset", "Vendor", "Procedure").
				Create(&workOrder).Error; err != nil {
				return err
			}
			for _, categoryName := range w.Categories {
				var category models.Category
				if err := tx.Where("name = ?", categoryName).First(&category).Error; err != nil {
					return fmt.Errorf("unknown category %q", categoryName)
				}
				link := models.WorkOrderCategory{WorkOrderID: workOrder.ID, CategoryID: category.ID}
				if err := tx.Create(&link).Error; err != nil {
					return err
				}
			}
			for _, partName := range w.Parts {
				partID, ok := parts[partName]
				if !ok {
					return fmt.Errorf("unknown part %q", partName)
				}
				link := models.WorkOrderPart{
					WorkOrderID: workOrder.ID,
					PartID:      partID,
					Quantity:    models.DefaultWorkOrderPartQuantity,
				}
				if err := tx.Create(&link).Error; err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			return fmt.Errorf("work order %q: %w", w.Name, err)
		}
	}

	return nil
}

func buildSections(sections []SectionData) []models.ProcedureSection {
	out := make([]models.ProcedureSection, len(sections))
	for i, s := range sections {
		fields := make([]models.ProcedureField, len(s.Fields))
		for j, f := range s.Fields {
			fields[j] = models.ProcedureField{
				Label:     f.Label,
				FieldType: f.FieldType,
				Order:     f.Order,
				Required:  f.Required,
				HelpText:  f.HelpText,
				Config:    f.Config,
			}
		}
		out[i] = models.ProcedureSection{
			Title:       s.Title,
			Description: s.Description,
			Order:       s.Order,
			Fields:      fields,
		}
	}
	return out
}

// firstOrCreate loads the row matching the condition or inserts dest
func firstOrCreate(db *gorm.DB, dest interface{}, query string, args ...interface{}) error {
	return db.Where(query, args...).FirstOrCreate(dest).Error
}

// lookup returns a pointer to the mapped id, nil when the name is empty
func lookup(m map[string]uint, name string) *uint {
	if name == "" {
		return nil
	}
	if id, ok := m[name]; ok {
		return &id
	}
	return nil
}
