package entity

type Cinema Reference
