package catalog

import (
	"time"

	"github.com/oklog/ulid/v2"
)

type Category struct {
	Id        ulid.ULID  `gorm:"type:varchar(26);primaryKey" json:"id"`
	Name      string     `gorm:"type:varchar(100);not null" json:"name"`
	ParentId  *ulid.ULID `gorm:"type:varchar(26);index:idx_categories_parent" json:"parentId,omitempty"`
	IsActive  bool       `gorm:"not null;default:true" json:"isActive"`
	CreatedAt time.Time  `gorm:"autoCreateTime;not null" json:"createdAt"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime;not null" json:"updatedAt"`
}

func (Category) TableName() string {
	return "categories"
}

// CategoryNode é uma categoria com seus filhos resolvidos, para exibição em
// árvore.
type CategoryNode struct {
	Category Category        `json:"category"`
	Children []*CategoryNode `json:"children"`
}

// BuildCategoryTree monta a hierarquia a partir da lista plana. Categorias com
// pai ausente da lista entram como raízes; a ordem relativa da lista é
// preservada em cada nível.
func BuildCategoryTree(categories []Category) []*CategoryNode {
	nodes := make(map[ulid.ULID]*CategoryNode, len(categories))
	ordered := make([]*CategoryNode, 0, len(categories))

	for _, category := range categories {
		node := &CategoryNode{Category: category, Children: []*CategoryNode{}}
		nodes[category.Id] = node
		ordered = append(ordered, node)
	}

	roots := make([]*CategoryNode, 0)
	for _, node := range ordered {
		parentId := node.Category.ParentId
		if parentId == nil {
			roots = append(roots, node)
			continue
		}
		if parent, ok := nodes[*parentId]; ok {
			parent.Children = append(parent.Children, node)
		} else {
			roots = append(roots, node)
		}
	}

	return roots
}
