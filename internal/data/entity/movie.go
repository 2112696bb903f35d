package entity

type Movie Reference
