package rom

// fileNames maps a DMA entry VROM start to the name of the file it holds.
var fileNames = map[uint32]string{
	0x01F0D000: "Z2_20SICHITAI2",
	0x02E95000: "KAKUSIANA",
	0x02E87000: "SPOT00",
	0x01F5B000: "Z2_WITCH_SHOP",
	0x01F70000: "Z2_LAST_BS",
	0x01F81000: "Z2_HAKASHITA",
	0x01FB1000: "Z2_AYASHIISHOP",
	0x01FCD000: "Z2_OMOYA",
	0x01FFE000: "Z2_BOWLING",
	0x02008000: "Z2_SONCHONOIE",
	0x02036000: "Z2_IKANA",
	0x02090000: "Z2_KAIZOKU",
	0x020B6000: "Z2_MILK_BAR",
	0x020CF000: "Z2_INISIE_N",
	0x02131000: "Z2_TAKARAYA",
	0x02143000: "Z2_INISIE_R",
	0x0219D000: "Z2_OKUJOU",
	0x021BB000: "Z2_OPENINGDAN",
	0x021D9000: "Z2_MITURIN",
	0x02249000: "Z2_13HUBUKINOMITI",
	0x02256000: "Z2_CASTLE",
	0x022A8000: "Z2_DEKUTES",
	0x022B6000: "Z2_MITURIN_BS",
	0x022BC000: "Z2_SYATEKI_MIZU",
	0x022CD000: "Z2_HAKUGIN",
	0x02360000: "Z2_ROMANYMAE",
	0x02368000: "Z2_PIRATE",
	0x02405000: "Z2_SYATEKI_MORI",
	0x0241E000: "Z2_SINKAI",
	0x02430000: "Z2_YOUSEI_IZUMI",
	0x02472000: "Z2_KINSTA1",
	0x024A2000: "Z2_KINDAN2",
	0x024E8000: "Z2_TENMON_DAI",
	0x0251D000: "Z2_LAST_DEKU",
	0x02534000: "Z2_22DEKUCITY",
	0x02576000: "Z2_KAJIYA",
	0x0258C000: "Z2_00KEIKOKU",
	0x025EE000: "Z2_POSTHOUSE",
	0x02601000: "Z2_LABO",
	0x02618000: "Z2_DANPEI2TEST",
	0x0263B000: "Z2_16GORON_HOUSE",
	0x0265E000: "Z2_33ZORACITY",
	0x02678000: "Z2_8ITEMSHOP",
	0x02690000: "Z2_F01",
	0x026BB000: "Z2_INISIE_BS",
	0x026BF000: "Z2_30GYOSON",
	0x026FC000: "Z2_31MISAKI",
	0x0272D000: "Z2_TAKARAKUJI",
	0x02733000: "Z2_TORIDE",
	0x0274E000: "Z2_FISHERMAN",
	0x02761000: "Z2_GORONSHOP",
	0x02778000: "Z2_DEKU_KING",
	0x02794000: "Z2_LAST_GORON",
	0x027B9000: "Z2_24KEMONOMITI",
	0x027C8000: "Z2_F01_B",
	0x027DC000: "Z2_F01C",
	0x027F1000: "Z2_BOTI",
	0x02816000: "Z2_HAKUGIN_BS",
	0x02825000: "Z2_20SICHITAI",
	0x02879000: "Z2_21MITURINMAE",
	0x02894000: "Z2_LAST_ZORA",
	0x028B8000: "Z2_11GORONNOSATO2",
	0x028D9000: "Z2_SEA",
	0x0296A000: "Z2_35TAKI",
	0x0299C000: "Z2_REDEAD",
	0x02A00000: "Z2_BANDROOM",
	0x02A4E000: "Z2_11GORONNOSATO",
	0x02A6B000: "Z2_GORON_HAKA",
	0x02A7C000: "Z2_SECOM",
	0x02A97000: "Z2_10YUKIYAMANOMURA",
	0x02AB2000: "Z2_TOUGITES",
	0x02ABE000: "Z2_DANPEI",
	0x02B2B000: "Z2_IKANAMAE",
	0x02B39000: "Z2_DOUJOU",
	0x02B48000: "Z2_MUSICHOUSE",
	0x02B6F000: "Z2_IKNINSIDE",
	0x02B86000: "Z2_MAP_SHOP",
	0x02B94000: "Z2_F40",
	0x02BB5000: "Z2_F41",
	0x02BD5000: "Z2_10YUKIYAMANOMURA2",
	0x02BFE000: "Z2_14YUKIDAMANOMITI",
	0x02C09000: "Z2_12HAKUGINMAE",
	0x02C19000: "Z2_17SETUGEN",
	0x02C2B000: "Z2_17SETUGEN2",
	0x02C3C000: "Z2_SEA_BS",
	0x02C48000: "Z2_RANDOM",
	0x02C79000: "Z2_YADOYA",
	0x02CBF000: "Z2_KONPEKI_ENT",
	0x02CCE000: "Z2_INSIDETOWER",
	0x02CE7000: "Z2_26SARUNOMORI",
	0x02D17000: "Z2_LOST_WOODS",
	0x02D3C000: "Z2_LAST_LINK",
	0x02D5A000: "Z2_SOUGEN",
	0x02D6D000: "Z2_BOMYA",
	0x02D82000: "Z2_KYOJINNOMA",
	0x02D93000: "Z2_KOEPONARACE",
	0x02DA7000: "Z2_GORONRACE",
	0x02DC5000: "Z2_TOWN",
	0x02DFC000: "Z2_ICHIBA",
	0x02E1D000: "Z2_BACKTOWN",
	0x02E39000: "Z2_CLOCKTOWER",
	0x02E70000: "Z2_ALLEY",
	0x00AD1000: "nes_message_data_static",
}

// FileName returns the known name of the file starting at vromStart, or "".
func FileName(vromStart uint32) string {
	return fileNames[vromStart]
}
