package configs

import (
	"log"

	"github.com/AugustoPaz13/RiVelez-SistemaDeGestion-sub000/entity"
	"golang.org/x/crypto/bcrypt"
)

// SeedStaff creates the staff accounts on first boot.
func SeedStaff() error {
	db := DB()

	staff := []struct {
		email, nombre, role string
	}{
		{"cajero@rivelez.com", "Carlos Pérez", entity.RolCajero},
		{"cocinero@rivelez.com", "María González", entity.RolCocinero},
		{"gerente@rivelez.com", "Ana Rivelez", entity.RolGerente},
	}

	pass := getEnv("STAFF_PASSWORD", "")
	if pass == "" {
		log.Println("skip seeding staff: missing STAFF_PASSWORD")
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	for _, s := range staff {
		var count int64
		db.Model(&entity.User{}).Where("email = ?", s.email).Count(&count)
		if count > 0 {
			continue
		}
		u := entity.User{Email: s.email, Password: string(hash), Nombre: s.nombre, Role: s.role}
		if err := db.Create(&u).Error; err != nil {
			return err
		}
		log.Println("seeded staff user:", s.email)
	}
	return nil
}

// SeedTables creates the fixed table inventory.
func SeedTables() error {
	db := DB()

	var count int64
	db.Model(&entity.Table{}).Count(&count)
	if count > 0 {
		return nil
	}

	capacidades := []int{4, 2, 4, 2, 6, 4, 8, 2, 4, 6, 2, 4}
	for i, cap := range capacidades {
		t := entity.Table{Numero: i + 1, Capacidad: cap, Estado: entity.TableDisponible}
		if err := db.Create(&t).Error; err != nil {
			return err
		}
	}
	log.Printf("seeded %d tables", len(capacidades))
	return nil
}

// SeedMenu loads the starting menu.
func SeedMenu() error {
	db := DB()

	var count int64
	db.Model(&entity.Product{}).Count(&count)
	if count > 0 {
		return nil
	}

	productos := []entity.Product{
		{Nombre: "Pizza Margarita", Descripcion: "Mozzarella, tomate y albahaca", Precio: 1250, Categoria: entity.CategoriaPrincipal},
		{Nombre: "Hamburguesa Clásica", Descripcion: "Carne, queso y vegetales", Precio: 1000, Categoria: entity.CategoriaPrincipal},
		{Nombre: "Pasta Carbonara", Descripcion: "Panceta, huevo y parmesano", Precio: 1400, Categoria: entity.CategoriaPrincipal},
		{Nombre: "Parrillada Mixta", Descripcion: "Para compartir", Precio: 4500, Categoria: entity.CategoriaPrincipal},
		{Nombre: "Ensalada César", Descripcion: "Lechuga, pollo y aderezo", Precio: 800, Categoria: entity.CategoriaEntrada},
		{Nombre: "Papas Fritas", Descripcion: "Porción grande", Precio: 400, Categoria: entity.CategoriaEntrada},
		{Nombre: "Tiramisú", Descripcion: "Postre de la casa", Precio: 550, Categoria: entity.CategoriaPostre},
		{Nombre: "Helado de Chocolate", Descripcion: "Dos bochas", Precio: 450, Categoria: entity.CategoriaPostre},
		{Nombre: "Coca Cola", Descripcion: "500ml", Precio: 250, Categoria: entity.CategoriaBebida},
		{Nombre: "Agua Mineral", Descripcion: "500ml", Precio: 150, Categoria: entity.CategoriaBebida},
		{Nombre: "Café Espresso", Descripcion: "", Precio: 200, Categoria: entity.CategoriaBebida},
		{Nombre: "Cerveza Artesanal", Descripcion: "Pinta", Precio: 650, Categoria: entity.CategoriaAlcohol},
		{Nombre: "Vino Tinto", Descripcion: "Copa", Precio: 1800, Categoria: entity.CategoriaAlcohol},
	}
	for i := range productos {
		if err := db.Create(&productos[i]).Error; err != nil {
			return err
		}
	}
	log.Printf("seeded %d products", len(productos))
	return nil
}
