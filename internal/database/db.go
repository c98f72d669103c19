package database

import (
	"context"
	"fmt"
	"log"

	"jobportal/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// NewConnection initializes a new connection pool using GORM
func NewConnection(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	// Auto-migrate core models
	err = db.AutoMigrate(
		&model.User{},
		&model.Role{},
		&model.Permission{},
		&model.Company{},
		&model.Job{},
		&model.Resume{},
		&model.Subscriber{},
	)
	if err != nil {
		log.Println("WARNING: Failed to auto-migrate models:", err)
	}

	return db, nil
}

// SeedRolesAndPermissions creates the permission catalogue and the built-in
// ADMIN and USER roles when missing. ADMIN holds every permission; USER
// holds none — regular accounts only reach public and authenticated routes.
func SeedRolesAndPermissions(ctx context.Context, db *gorm.DB) error {
	catalogue := []model.Permission{
		{Name: "Tạo người dùng", APIPath: "/users", Method: "POST", Module: "USERS"},
		{Name: "Xem danh sách người dùng", APIPath: "/users", Method: "GET", Module: "USERS"},
		{Name: "Cập nhật người dùng", APIPath: "/users", Method: "PATCH", Module: "USERS"},
		{Name: "Xóa người dùng", APIPath: "/users/:id", Method: "DELETE", Module: "USERS"},

		{Name: "Tạo công ty", APIPath: "/companies", Method: "POST", Module: "COMPANIES"},
		{Name: "Cập nhật công ty", APIPath: "/companies/:id", Method: "PATCH", Module: "COMPANIES"},
		{Name: "Xóa công ty", APIPath: "/companies/:id", Method: "DELETE", Module: "COMPANIES"},

		{Name: "Tạo việc làm", APIPath: "/jobs", Method: "POST", Module: "JOBS"},
		{Name: "Cập nhật việc làm", APIPath: "/jobs/:id", Method: "PATCH", Module: "JOBS"},
		{Name: "Xóa việc làm", APIPath: "/jobs/:id", Method: "DELETE", Module: "JOBS"},

		{Name: "Tạo role", APIPath: "/roles", Method: "POST", Module: "ROLES"},
		{Name: "Xem danh sách role", APIPath: "/roles", Method: "GET", Module: "ROLES"},
		{Name: "Xem role", APIPath: "/roles/:id", Method: "GET", Module: "ROLES"},
		{Name: "Cập nhật role", APIPath: "/roles/:id", Method: "PATCH", Module: "ROLES"},
		{Name: "Xóa role", APIPath: "/roles/:id", Method: "DELETE", Module: "ROLES"},

		{Name: "Tạo permission", APIPath: "/permissions", Method: "POST", Module: "PERMISSIONS"},
		{Name: "Xem danh sách permission", APIPath: "/permissions", Method: "GET", Module: "PERMISSIONS"},
		{Name: "Xem permission", APIPath: "/permissions/:id", Method: "GET", Module: "PERMISSIONS"},
		{Name: "Cập nhật permission", APIPath: "/permissions/:id", Method: "PATCH", Module: "PERMISSIONS"},
		{Name: "Xóa permission", APIPath: "/permissions/:id", Method: "DELETE", Module: "PERMISSIONS"},

		{Name: "Xem danh sách hồ sơ", APIPath: "/resumes", Method: "GET", Module: "RESUMES"},
		{Name: "Xem hồ sơ", APIPath: "/resumes/:id", Method: "GET", Module: "RESUMES"},
		{Name: "Duyệt hồ sơ", APIPath: "/resumes/:id", Method: "PATCH", Module: "RESUMES"},
		{Name: "Xóa hồ sơ", APIPath: "/resumes/:id", Method: "DELETE", Module: "RESUMES"},

		{Name: "Tạo subscriber", APIPath: "/subscribers", Method: "POST", Module: "SUBSCRIBERS"},
		{Name: "Xem danh sách subscriber", APIPath: "/subscribers", Method: "GET", Module: "SUBSCRIBERS"},
		{Name: "Xem subscriber", APIPath: "/subscribers/:id", Method: "GET", Module: "SUBSCRIBERS"},
		{Name: "Xóa subscriber", APIPath: "/subscribers/:id", Method: "DELETE", Module: "SUBSCRIBERS"},
	}

	for i := range catalogue {
		p := &catalogue[i]
		if err := db.WithContext(ctx).
			Where("api_path = ? AND method = ?", p.APIPath, p.Method).
			FirstOrCreate(p).Error; err != nil {
			return fmt.Errorf("seed permission %s %s: %w", p.Method, p.APIPath, err)
		}
	}

	var admin model.Role
	if err := db.WithContext(ctx).Where("name = ?", model.RoleAdmin).First(&admin).Error; err != nil {
		admin = model.Role{
			Name:        model.RoleAdmin,
			Description: "Quản trị viên — toàn quyền hệ thống",
			IsActive:    true,
		}
		if err := db.WithContext(ctx).Create(&admin).Error; err != nil {
			return fmt.Errorf("seed role %s: %w", model.RoleAdmin, err)
		}
	}
	if err := db.WithContext(ctx).Model(&admin).Association("Permissions").Replace(catalogue); err != nil {
		return fmt.Errorf("assign permissions to %s: %w", model.RoleAdmin, err)
	}

	var user model.Role
	if err := db.WithContext(ctx).Where("name = ?", model.RoleUser).First(&user).Error; err != nil {
		user = model.Role{
			Name:        model.RoleUser,
			Description: "Người dùng — ứng tuyển và theo dõi việc làm",
			IsActive:    true,
		}
		if err := db.WithContext(ctx).Create(&user).Error; err != nil {
			return fmt.Errorf("seed role %s: %w", model.RoleUser, err)
		}
	}

	return nil
}
