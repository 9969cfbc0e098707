package model

// Comment is a visitor comment left on a shop's detail page. Comments are
// written once and never edited or removed through the UI; deleting a shop
// removes its comments with it.
//
// Fields:
//  ID     – primary key identifier.
//  ShopID – the shop this comment belongs to.
//  Name   – visitor-provided display name.
//  Body   – comment text.
type Comment struct {
	ID     uint64 // comments.id
	ShopID uint64 // comments.shop_id
	Name   string // comments.name
	Body   string // comments.body
}
