package classifier

// FeatureNames is the ordered feature catalog the trained classifier was
// fit on. The first two slots are patient age and sex, every slot after
// that is a binary comorbidity flag. Order and length are the scorer's
// input contract and must never change without retraining the model.
var FeatureNames = []string{
	"patient_age", "patient_sex", "SAH", "acute myocardium infarct", "adrenal hypoplasia", "albinism",
	"alzheimer", "anemia", "aneurysm", "ankylosing spondylitis", "arrhythmia", "arthrosis", "asthma",
	"behcet", "brain tumor", "breast cancer", "cardiac insufficiency", "cardiopathy", "catheterism",
	"cerebral palsy", "chron disease", "chronic kidney disease", "cirrhosis", "cone dystrophy", "devic",
	"dialysis", "down syndrome", "dyslipidemia", "fibromyalgia", "hashimoto disease", "hepatic cancer",
	"hepatic transplant", "hepatitis c", "herpetic encephalitis", "hipocolesterolemia",
	"human immunodeficiency virus", "hydrocephalus", "hypercholesterolemia", "hypertriglyceridemia",
	"hypophysis adenoma", "intestinal cancer", "intracranial hypertension", "kidney transplant", "leucemia",
	"lung cancer", "lymphoma", "mccune albright", "meningioma", "migraine", "muscular dystrophy",
	"neurofibromatosis", "obesity", "osteoporosis", "policitemia vera", "prolactinoma", "prostatic hyperplasia",
	"psoriasis", "pulmonary embolism", "sarcoidosis", "sickle cell anemia", "sjogren", "tabagism",
	"valvulopathy", "vasculitis", "vitiligo", "AVC", "doenca_chagas", "trombose_venosa_profunda",
	"cloroquina", "hipotireoidismo", "hipertireoidismo", "esclerose_multipla", "artrite",
}

// labelsPT maps catalog keys to the Portuguese display labels used on the
// rendered report.
var labelsPT = map[string]string{
	"patient_age":                  "Idade",
	"patient_sex":                  "Sexo",
	"SAH":                          "Hipertensão Arterial Sistêmica (HAS)",
	"acute myocardium infarct":     "Infarto Agudo do Miocárdio",
	"adrenal hypoplasia":           "Hipoplasia Adrenal",
	"albinism":                     "Albinismo",
	"alzheimer":                    "Alzheimer",
	"anemia":                       "Anemia",
	"aneurysm":                     "Aneurisma",
	"ankylosing spondylitis":       "Espondilite Anquilosante",
	"arrhythmia":                   "Arritmia",
	"arthrosis":                    "Artrose",
	"asthma":                       "Asma",
	"behcet":                       "Doença de Behçet",
	"brain tumor":                  "Tumor Cerebral",
	"breast cancer":                "Câncer de Mama",
	"cardiac insufficiency":        "Insuficiência Cardíaca",
	"cardiopathy":                  "Cardiopatia",
	"catheterism":                  "Cateterismo",
	"cerebral palsy":               "Paralisia Cerebral",
	"chron disease":                "Doença de Crohn",
	"chronic kidney disease":       "Doença Renal Crônica",
	"cirrhosis":                    "Cirrose",
	"cone dystrophy":               "Distrofia de Cones",
	"devic":                        "Síndrome de Devic",
	"dialysis":                     "Diálise",
	"down syndrome":                "Síndrome de Down",
	"dyslipidemia":                 "Dislipidemia",
	"fibromyalgia":                 "Fibromialgia",
	"hashimoto disease":            "Doença de Hashimoto",
	"hepatic cancer":               "Câncer Hepático",
	"hepatic transplant":           "Transplante Hepático",
	"hepatitis c":                  "Hepatite C",
	"herpetic encephalitis":        "Encefalite Herpética",
	"hipocolesterolemia":           "Hipocolesterolemia",
	"human immunodeficiency virus": "HIV",
	"hydrocephalus":                "Hidrocefalia",
	"hypercholesterolemia":         "Hipercolesterolemia",
	"hypertriglyceridemia":         "Hipertrigliceridemia",
	"hypophysis adenoma":           "Adenoma de Hipófise",
	"intestinal cancer":            "Câncer Intestinal",
	"intracranial hypertension":    "Hipertensão Intracraniana",
	"kidney transplant":            "Transplante Renal",
	"leucemia":                     "Leucemia",
	"lung cancer":                  "Câncer de Pulmão",
	"lymphoma":                     "Linfoma",
	"mccune albright":              "Síndrome de McCune-Albright",
	"meningioma":                   "Meningioma",
	"migraine":                     "Enxaqueca",
	"muscular dystrophy":           "Distrofia Muscular",
	"neurofibromatosis":            "Neurofibromatose",
	"obesity":                      "Obesidade",
	"osteoporosis":                 "Osteoporose",
	"policitemia vera":             "Policitemia Vera",
	"prolactinoma":                 "Prolactinoma",
	"prostatic hyperplasia":        "Hiperplasia Prostática",
	"psoriasis":                    "Psoríase",
	"pulmonary embolism":           "Embolia Pulmonar",
	"sarcoidosis":                  "Sarcoidose",
	"sickle cell anemia":           "Anemia Falciforme",
	"sjogren":                      "Síndrome de Sjögren",
	"tabagism":                     "Tabagismo",
	"valvulopathy":                 "Valvulopatia",
	"vasculitis":                   "Vasculite",
	"vitiligo":                     "Vitiligo",
	"AVC":                          "Acidente Vascular Cerebral (AVC)",
	"doenca_chagas":                "Doença de Chagas",
	"trombose_venosa_profunda":     "Trombose Venosa Profunda",
	"cloroquina":                   "Uso de Cloroquina",
	"hipotireoidismo":              "Hipotireoidismo",
	"hipertireoidismo":             "Hipertireoidismo",
	"esclerose_multipla":           "Esclerose Múltipla",
	"artrite":                      "Artrite",
}

// featureIndex is built once from FeatureNames for O(1) catalog lookups.
var featureIndex = func() map[string]int {
	idx := make(map[string]int, len(FeatureNames))
	for i, name := range FeatureNames {
		idx[name] = i
	}
	return idx
}()

// InCatalog reports whether key is a known catalog feature.
func InCatalog(key string) bool {
	_, ok := featureIndex[key]
	return ok
}

// LabelPT returns the Portuguese display label for a catalog key, falling
// back to the raw key when no translation exists.
func LabelPT(key string) string {
	if label, ok := labelsPT[key]; ok {
		return label
	}
	return key
}
