package seed

import "github.com/wowbarber/wow-barber/internal/models"

// Catálogo fixo usado pelo endpoint de seed (demo/dev).
// Cada chamada insere tudo de novo, sem checar duplicatas.

func Services() []models.Service {
	return []models.Service{
		{
			Name:        "Corte Masculino",
			Price:       45.00,
			Duration:    30,
			Description: "Corte tradicional ou moderno com máquina e tesoura",
		},
		{
			Name:        "Barba Completa",
			Price:       35.00,
			Duration:    20,
			Description: "Alinhamento, navalha e finalização",
		},
		{
			Name:        "Corte + Barba",
			Price:       70.00,
			Duration:    50,
			Description: "Pacote completo com corte e barba",
		},
		{
			Name:        "Tratamento de Barba",
			Price:       40.00,
			Duration:    25,
			Description: "Hidratação e modelagem da barba",
		},
		{
			Name:        "Pigmentação",
			Price:       80.00,
			Duration:    40,
			Description: "Micropigmentação capilar",
		},
		{
			Name:        "Platinado",
			Price:       120.00,
			Duration:    90,
			Description: "Descoloração completa e tratamento",
		},
	}
}

func Barbers() []models.Barber {
	return []models.Barber{
		{
			Name:        "João Silva",
			Email:       "joao@wowbarber.com",
			Phone:       "(11) 98765-4321",
			Specialties: "Cortes modernos, barbas",
		},
		{
			Name:        "Pedro Santos",
			Email:       "pedro@wowbarber.com",
			Phone:       "(11) 98765-4322",
			Specialties: "Cortes clássicos, tratamentos",
		},
		{
			Name:        "Carlos Oliveira",
			Email:       "carlos@wowbarber.com",
			Phone:       "(11) 98765-4323",
			Specialties: "Pigmentação, platinado",
		},
	}
}
